package substmat

// Default clustering-identity BLOSUM matrices shipped with the module (§6).
// Loaded lazily and cached so repeated TCRdistComposite construction with
// the default schema does not re-parse the embedded JSON on every call.

import "sync"

var (
	blosum45Once sync.Once
	blosum45     *Matrix
	blosum45Err  error

	blosum62Once sync.Once
	blosum62     *Matrix
	blosum62Err  error

	blosum90Once sync.Once
	blosum90     *Matrix
	blosum90Err  error
)

// Blosum45 returns the shipped BLOSUM45 matrix.
func Blosum45() (*Matrix, error) {
	blosum45Once.Do(func() { blosum45, blosum45Err = LoadEmbedded("blosum-45") })
	return blosum45, blosum45Err
}

// Blosum62 returns the shipped BLOSUM62 matrix.
func Blosum62() (*Matrix, error) {
	blosum62Once.Do(func() { blosum62, blosum62Err = LoadEmbedded("blosum-62") })
	return blosum62, blosum62Err
}

// Blosum90 returns the shipped BLOSUM90 matrix.
func Blosum90() (*Matrix, error) {
	blosum90Once.Do(func() { blosum90, blosum90Err = LoadEmbedded("blosum-90") })
	return blosum90, blosum90Err
}
