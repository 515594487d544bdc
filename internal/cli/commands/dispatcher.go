package commands

import (
	"RestAPIFurb/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

// коды выхода процесса
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dispatch выполняет команду из args (аргументы после флагов) и возвращает код выхода.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		// уточнение после "usage: ", если команда его добавила
		if detail := strings.TrimPrefix(err.Error(), ErrUsage.Error()); detail != "" {
			fmt.Fprintln(Out, strings.TrimLeft(detail, ": "))
		}
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitError
	}
}

// help: comandacli help [command]
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(strings.ToLower(args[0]))
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}
	fmt.Fprintf(Out, "%s\nUsage: %s\n", c.Description(), c.Usage())
	return exitOK
}
