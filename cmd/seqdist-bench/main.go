// Command seqdist-bench runs a small batch of sequences through a chosen
// kernel and prints the resulting distance matrix, exercising the
// pairwise driver, structured logging, telemetry, and the matrix report
// renderer end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fulmenhq/seqdist/distance"
	"github.com/fulmenhq/seqdist/logging"
	"github.com/fulmenhq/seqdist/pairwise"
	"github.com/fulmenhq/seqdist/report"
	"github.com/fulmenhq/seqdist/substmat"
	"github.com/fulmenhq/seqdist/telemetry"
)

func main() {
	kernelName := flag.String("kernel", "levenshtein", "kernel to run: levenshtein, hamming, jaro, jaro_winkler, osa, lcs, tcrdist_component, cdr_dist, damerau_levenshtein")
	sequences := flag.String("sequences", "CASSQDRGEQFF,CASSLKPNTEAFF,CASSAHIANYGYTF", "comma-separated sequence list")
	precision := flag.Int("precision", 4, "decimal places in the printed matrix")
	matrixDir := flag.String("matrix-dir", "", "directory to discover a hand-authored substitution matrix from, instead of the embedded BLOSUM tables (tcrdist_component, cdr_dist only)")
	matrixPattern := flag.String("matrix-pattern", "*.json", "doublestar glob pattern used under -matrix-dir")
	matrixFile := flag.String("matrix-file", "", "specific file under -matrix-dir to load; required when the pattern matches more than one file")
	flag.Parse()

	logger, err := logging.NewCLI("seqdist-bench")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runID := telemetry.NewCorrelationID()
	logger = logger.WithFields(map[string]any{"runId": runID})

	seqs := strings.Split(*sequences, ",")

	var customMatrix *substmat.Matrix
	if *matrixDir != "" {
		customMatrix, err = resolveMatrix(*matrixDir, *matrixPattern, *matrixFile)
		if err != nil {
			logger.Error("matrix discovery failed", zap.String("dir", *matrixDir), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("loaded validated substitution matrix", zap.String("dir", *matrixDir))
	}

	k, err := buildKernel(*kernelName, customMatrix)
	if err != nil {
		logger.Error("unsupported kernel", zap.String("kernel", *kernelName), zap.Error(err))
		os.Exit(1)
	}

	sys, err := telemetry.NewSystem(telemetry.DefaultConfig())
	if err != nil {
		logger.Error("telemetry init failed", zap.Error(err))
		os.Exit(1)
	}
	distance.EnableTelemetry(sys)
	defer distance.DisableTelemetry()

	vec, err := pairwise.Run(seqs, k, pairwise.Options{Telemetry: sys})
	if err != nil {
		logger.Error("pairwise run failed", zap.String("kernel", *kernelName), zap.Error(err))
		os.Exit(1)
	}

	logger.Info("batch complete", zap.Int("sequences", len(seqs)), zap.String("kernel", *kernelName))

	matrix := pairwise.ToSquare(vec, len(seqs))
	fmt.Print(report.FormatMatrix(seqs, matrix, *precision))
}

func buildKernel(name string, customMatrix *substmat.Matrix) (distance.Kernel, error) {
	switch name {
	case "levenshtein":
		return distance.NewLevenshtein(0), nil
	case "hamming":
		return distance.NewHamming(1), nil
	case "jaro":
		return distance.NewJaro(distance.DefaultJaroWeights())
	case "jaro_winkler":
		return distance.NewJaroWinkler(0.1, 4, distance.DefaultJaroWeights())
	case "osa":
		return distance.NewOSA(), nil
	case "lcs":
		return distance.NewLCS(), nil
	case "damerau_levenshtein":
		return distance.NewDamerauLevenshtein(), nil
	case "tcrdist_component":
		matrix := customMatrix
		if matrix == nil {
			m, err := substmat.Blosum62()
			if err != nil {
				return nil, err
			}
			matrix = m
		}
		return distance.NewTCRdistComponent(matrix, 4, distance.WithGapSymbol("-"), distance.WithWeight(1)), nil
	case "cdr_dist":
		matrix := customMatrix
		if matrix == nil {
			m, err := substmat.Blosum45()
			if err != nil {
				return nil, err
			}
			matrix = m
		}
		return distance.NewCdrDist(matrix, 10, 1), nil
	default:
		return nil, fmt.Errorf("unknown kernel %q", name)
	}
}

// resolveMatrix discovers substitution-matrix JSON files under dir matching
// pattern, schema-validates the selected one, and loads it. Exercises the
// doublestar-glob discovery and jsonschema/v5 validation path for callers
// who want to benchmark against a hand-authored or downloaded matrix
// instead of the embedded BLOSUM tables.
func resolveMatrix(dir, pattern, file string) (*substmat.Matrix, error) {
	paths, err := substmat.DiscoverFiles(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("discovering matrix files under %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no matrix files matching %q found under %s", pattern, dir)
	}

	target := filepath.Join(dir, file)
	if file == "" {
		if len(paths) > 1 {
			return nil, fmt.Errorf("multiple matrix files found under %s, pass -matrix-file to choose one: %v", dir, paths)
		}
		target = paths[0]
	}

	validator, err := substmat.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("compiling substitution matrix schema: %w", err)
	}
	return substmat.LoadJSONValidated(target, validator)
}
