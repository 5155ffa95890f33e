package main

import (
	"os"

	"github.com/arthur-debert/batch-rename/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewBatchRenameCmd()))
}
