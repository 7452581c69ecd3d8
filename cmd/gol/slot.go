package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"lifegrid/internal/store"
	"lifegrid/pkg/zoo"
)

func cmdSlot(e *env, args []string) error {
	fs := newFlagSet(e, "slot", "save <name> <file> | load <name> [file] | list | delete <name>")
	if err := parse(fs, args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}
	want := map[string][2]int{"save": {3, 3}, "load": {2, 3}, "list": {1, 1}, "delete": {2, 2}}
	n, ok := want[rest[0]]
	if !ok || len(rest) < n[0] || len(rest) > n[1] {
		fs.Usage()
		return errUsage
	}

	st, err := store.Open(e.settings.StoreApp)
	if err != nil {
		return err
	}
	if !st.Persistent() {
		log.Warn().Msg("slots are kept in memory and will be lost on exit")
	}

	switch rest[0] {
	case "save":
		g, err := zoo.Load(rest[2])
		if err != nil {
			return err
		}
		return st.Save(rest[1], g)
	case "load":
		g, err := st.Load(rest[1])
		if err != nil {
			return err
		}
		if len(rest) == 3 {
			return zoo.Save(rest[2], g)
		}
		return printBoard(e.stdout, g)
	case "list":
		names, err := st.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(e.stdout, name)
		}
		return nil
	default:
		return st.Delete(rest[1])
	}
}
