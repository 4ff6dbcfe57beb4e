/*
Copyright © 2025 Dayflow Authors
*/
package main

import (
	"github.com/dayflowhq/dayflow/cmd"
	"github.com/dayflowhq/dayflow/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
