// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package steer interprets a flat sequence of command-line tokens into a
// resolved, fully-bound invocation of one registered command.
//
// Interpretation is a three-stage pipeline over a single token stream:
//   - Routing: walk the registry tree of command groups and leaf commands,
//     consuming one token per level, with alias substitution at each group.
//   - Option recognition: match flag and keyed-option tokens against the
//     command's visible option set (own + inherited + global) and bind their
//     values.
//   - Parameter filling: bind the remaining positional tokens to the
//     command's declared signature of required, optional-with-default, and
//     variadic slots.
//
// Every stage runs a deterministic left-to-right scan with no backtracking.
// A stage either passes a consumed view of the stream forward or
// short-circuits with a typed failure.
//
// # Basic usage
//
//	cli := steer.New("greet", "1.2.0")
//	cli.Root.MustAdd(&steer.Command{
//	    Name:    "hello",
//	    Options: []*steer.Option{steer.Flag("Shout the greeting", "-l", "--loud")},
//	    Params:  steer.MustSignature(steer.Required("name"), steer.Optional("greeting", "Hello")),
//	    Action: func(b *steer.BoundCommand) error {
//	        name, _ := b.Params.Value("name")
//	        greeting, _ := b.Params.Value("greeting")
//	        fmt.Printf("%s, %s!\n", greeting, name)
//	        return nil
//	    },
//	})
//	cli.Renderer = render.Detect(os.Stdout)
//	os.Exit(cli.Run(os.Args[1:]))
//
// # Command groups and aliases
//
// Groups nest arbitrarily and contribute shared options to every descendant:
//
//	remote := steer.NewGroup("remote")
//	remote.Shared = []*steer.Option{steer.KeyedOption(steer.StringValue, "Remote name", "-r", "--remote")}
//	remote.MustAdd(addCmd, removeCmd)
//	cli.Root.MustAdd(remote)
//	cli.Root.Alias("rm", "remote")
//
// The root group is seeded with "-h" -> help and "-v" -> version; an
// integrator may override or clear them, or load overrides from a TOML
// alias file via LoadAliasFile.
//
// # Outcomes
//
// Interpret returns exactly one of three outcomes: a *BoundCommand ready to
// execute, a *UsageRequest (help was asked for; print usage and stop with
// success), or a *Failure carrying a message and an exit status. Run maps
// the outcome onto the Renderer and Executor collaborators and returns the
// process exit status.
//
// Configuration mistakes - duplicate option spellings, malformed parameter
// signatures, duplicate child names - are detected when the registry is
// built, before any token is processed, and panic rather than surface as
// user-facing errors.
package steer
