// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greet is a small demonstration CLI built on pkg/steer: nested
// command groups, shared options, aliases, and parameter signatures.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/steerrun/steer/pkg/render"
	"github.com/steerrun/steer/pkg/steer"
)

func main() {
	loud := steer.Flag("Shout the greeting", "-l", "--loud")
	times := steer.KeyedOption(steer.IntValue, "Repeat the greeting", "-n", "--times")

	hello := &steer.Command{
		Name:        "hello",
		Description: "Greet someone",
		Options:     []*steer.Option{loud, times},
		Params: steer.MustSignature(
			steer.Required("name"),
			steer.Optional("greeting", "Hello"),
		),
		Action: func(b *steer.BoundCommand) error {
			name, _ := b.Params.Value("name")
			greeting, _ := b.Params.Value("greeting")
			line := fmt.Sprintf("%s, %s!", greeting, name)
			if b.Options.Bool("--loud") {
				line = strings.ToUpper(line)
			}
			n, ok := b.Options.Int("--times")
			if !ok {
				n = 1
			}
			for i := 0; i < n; i++ {
				fmt.Println(line)
			}
			return nil
		},
	}

	wave := &steer.Command{
		Name:        "wave",
		Description: "Wave at everyone listed",
		Params:      steer.MustSignature(steer.Variadic("names")),
		Action: func(b *steer.BoundCommand) error {
			for _, name := range b.Params.Variadic() {
				fmt.Printf("o/ %s\n", name)
			}
			return nil
		},
	}

	formal := steer.NewGroup("formal")
	formal.Description = "Formal greetings"
	formal.Shared = []*steer.Option{
		steer.KeyedOption(steer.StringValue, "Honorific to use", "--title"),
	}
	formal.MustAdd(&steer.Command{
		Name:        "address",
		Description: "Address someone properly",
		Params:      steer.MustSignature(steer.Required("name")),
		Action: func(b *steer.BoundCommand) error {
			name, _ := b.Params.Value("name")
			title, ok := b.Options.String("--title")
			if !ok {
				title = "Dear"
			}
			fmt.Printf("%s %s,\n", title, name)
			return nil
		},
	})

	cli := steer.New("greet", "1.2.0")
	cli.Description = "Greetings from the command line"
	cli.Root.MustAdd(hello, wave, formal)
	cli.Root.Alias("hi", "hello")
	cli.ApplyAliasFileIfPresent(filepath.Join(os.Getenv("HOME"), ".greet", "aliases.toml"))
	cli.Renderer = render.Detect(os.Stdout)

	os.Exit(cli.Run(os.Args[1:]))
}
