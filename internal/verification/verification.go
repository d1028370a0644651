// Package verification verifies that a decoded register image recreates its source dump.
package verification

import (
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/extcsd/internal/register"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

// VerifyImage re-encodes the image and compares it to the register dump file it was decoded from.
func VerifyImage(logger *log.Logger, input string, img *register.Image) error {
	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading source file for comparison: %w", err)
	}
	return VerifyText(logger, string(source), img)
}

// VerifyText compares the re-encoded image to the register dump text.
func VerifyText(logger *log.Logger, text string, img *register.Image) error {
	expected := strings.ToUpper(strings.TrimSuffix(text, "\n"))
	encoded := register.Encode(img)
	return checkTextEqual(logger, expected, encoded)
}

func checkTextEqual(logger *log.Logger, input, output string) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	firstDiff := -1
	for i := 0; i+1 < len(input); i += 2 {
		expected, got := input[i:i+2], output[i:i+2]
		if expected == got {
			continue
		}

		diffs++
		if firstDiff == -1 {
			firstDiff = i / 2
		}
		if diffs <= maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Int("offset", i/2),
				log.String("expected", expected),
				log.String("got", got))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches, first at offset %d", diffs, firstDiff)
}
