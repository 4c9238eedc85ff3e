// Command mchash-repl is an interactive shell for exercising an in-memory
// *mchash.Map[string, string] by hand.
//
// Commands:
//
//	put <key> <value>   Insert or overwrite an entry
//	get <key>           Look up an entry
//	del <key>           Delete an entry
//	size                Show current size and capacity
//	depth               Show the max probe depth in use
//	keys [limit]        List live keys
//	pop                 Remove an arbitrary entry and print its value
//	clear               Remove every entry
//	help                Show this help
//	exit / quit / q     Exit
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/db47h/mchash"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mchash_repl_history")
}

type repl struct {
	m     *mchash.Map[string, string]
	liner *liner.State
}

func run() error {
	m, err := mchash.New[string, string](1 << 16)
	if err != nil {
		return err
	}

	r := &repl{m: m, liner: liner.NewLiner()}
	defer r.liner.Close()
	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("mchash-repl (capacity=%d)\n", r.m.Capacity())
	fmt.Println("Type 'help' for available commands.")

	for {
		line, err := r.liner.Prompt("mchash> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil
		case "help", "?":
			r.printHelp()
		case "put":
			r.cmdPut(args)
		case "get":
			r.cmdGet(args)
		case "del", "delete":
			r.cmdDelete(args)
		case "size":
			r.cmdSize()
		case "depth":
			fmt.Println(r.m.MaxProbeDepthInUse())
		case "keys":
			r.cmdKeys(args)
		case "pop":
			r.cmdPop()
		case "clear":
			r.m.Clear()
			fmt.Println("cleared")
		default:
			fmt.Printf("unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()
	return nil
}

func (r *repl) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *repl) completer(line string) []string {
	cmds := []string{"put", "get", "del", "size", "depth", "keys", "pop", "clear", "help", "exit"}
	var out []string
	for _, c := range cmds {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

func (r *repl) cmdPut(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: put <key> <value>")
		return
	}
	prior, had, err := r.m.Upsert(args[0], strings.Join(args[1:], " "))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if had {
		fmt.Printf("overwrote %q (was %q)\n", args[0], prior)
	} else {
		fmt.Printf("inserted %q\n", args[0])
	}
}

func (r *repl) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: get <key>")
		return
	}
	v, ok := r.m.Lookup(args[0])
	if !ok {
		fmt.Println("(not found)")
		return
	}
	fmt.Println(v)
}

func (r *repl) cmdDelete(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: del <key>")
		return
	}
	v, ok := r.m.Delete(args[0])
	if !ok {
		fmt.Println("(not found)")
		return
	}
	fmt.Printf("removed %q (was %q)\n", args[0], v)
}

func (r *repl) cmdSize() {
	fmt.Printf("size=%d capacity=%d load=%.3f\n", r.m.Size(), r.m.Capacity(), r.m.Load())
}

func (r *repl) cmdKeys(args []string) {
	limit := -1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err == nil {
			limit = n
		}
	}
	count := 0
	for k := range r.m.Keys() {
		fmt.Println(k)
		count++
		if limit >= 0 && count >= limit {
			break
		}
	}
}

func (r *repl) cmdPop() {
	if r.m.IsEmpty() {
		fmt.Println("(empty)")
		return
	}
	fmt.Println(r.m.PopRandomValue())
}

func (r *repl) printHelp() {
	fmt.Print(`put <key> <value>   Insert or overwrite an entry
get <key>           Look up an entry
del <key>           Delete an entry
size                Show current size and capacity
depth               Show the max probe depth in use
keys [limit]        List live keys
pop                 Remove an arbitrary entry and print its value
clear               Remove every entry
help                Show this help
exit / quit / q     Exit
`)
}
