package scan

import (
	"fmt"
	"io"
	"os"
)

// Emit writes rendered output to outputFile, or to w when no file is set.
// Shared by the scan and watch commands.
func Emit(output, outputFile string, w io.Writer) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprint(w, output)
	return err
}
