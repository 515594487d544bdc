package commands

import (
	"RestAPIFurb/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage неверные аргументы; dispatcher печатает Usage команды.
var ErrUsage = errors.New("usage")

// Command подкоманда comandacli.
type Command interface {
	Name() string
	// Description одна строка для общего help.
	Description() string
	// Usage синтаксис вызова, например "comanda-get <id>".
	Usage() string
	// Run получает аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out вывод CLI, в тестах подменяется буфером.
var Out io.Writer = os.Stdout

// команды учётной записи; остальные относятся к коммандам
var accountCmds = map[string]bool{"register": true, "login": true, "logout": true, "whoami": true}

// RegisterCmd регистрирует команду, вызывается из init().
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get ищет команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List все команды по алфавиту.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage общий help: команды учётной записи отдельно от комманд.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("RestAPIFurb CLI: клиент API комманд\n\n")
	b.WriteString("Usage:\n  comandacli [--server URL] [--base-path PATH] [--token-file PATH] <command> [args]\n")

	var account, other []Command
	for _, c := range List() {
		if accountCmds[c.Name()] {
			account = append(account, c)
		} else {
			other = append(other, c)
		}
	}
	writeSection(&b, "Conta", account)
	writeSection(&b, "Comandas", other)

	b.WriteString("\nEnv: SERVER_URL, BASE_PATH, TOKEN_FILE. Подробнее: comandacli help <command>\n")
	return b.String()
}

func writeSection(b *strings.Builder, title string, cmds []Command) {
	if len(cmds) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, c := range cmds {
		fmt.Fprintf(b, "  %-56s %s\n", c.Usage(), c.Description())
	}
}
