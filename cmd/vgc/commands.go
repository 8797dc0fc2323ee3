package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/KirkDiggler/vgc-companion/internal/auth"
	"github.com/KirkDiggler/vgc-companion/internal/clients/vgcapi"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/services/replays"
)

// subcommand splits args into a verb and its arguments
func subcommand(group string, args []string, verbs ...string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, vgcerr.InvalidArgumentf("usage: vgc %s <%s>", group, strings.Join(verbs, "|"))
	}
	for _, v := range verbs {
		if args[0] == v {
			return v, args[1:], nil
		}
	}
	return "", nil, vgcerr.InvalidArgumentf("unknown %s command %q", group, args[0])
}

func requireArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return vgcerr.InvalidArgument("usage: vgc " + usage)
	}
	return nil
}

func signedInUID(ctx context.Context) (string, error) {
	session, err := auth.RequireSession(ctx)
	if err != nil {
		return "", err
	}
	return session.UID, nil
}

func runReplays(ctx context.Context, a *app, args []string) error {
	verb, rest, err := subcommand("replays", args,
		"list", "get", "save", "delete", "select", "deselect", "clear", "selection", "analytics")
	if err != nil {
		return err
	}

	svc := a.provider.Replays
	if err := svc.Load(ctx); err != nil {
		return err
	}

	// selection edits are local and work signed out
	switch verb {
	case "select", "deselect":
		if err := requireArgs(rest, 1, "replays "+verb+" <saved-id>..."); err != nil {
			return err
		}
		for _, id := range rest {
			if verb == "select" {
				err = svc.Select(ctx, id)
			} else {
				err = svc.Deselect(ctx, id)
			}
			if err != nil {
				return err
			}
		}
		return a.print(svc.Selection())
	case "clear":
		if err := svc.Clear(ctx); err != nil {
			return err
		}
		return a.print(svc.Selection())
	}

	uid, err := signedInUID(ctx)
	if err != nil {
		return err
	}

	switch verb {
	case "list":
		saved, err := svc.ListSaved(ctx, uid)
		if err != nil {
			return err
		}
		return a.print(saved)

	case "get":
		if err := requireArgs(rest, 1, "replays get <saved-id>"); err != nil {
			return err
		}
		saved, err := svc.GetSaved(ctx, uid, rest[0])
		if err != nil {
			return err
		}
		return a.print(saved)

	case "save":
		fs := flag.NewFlagSet("replays save", flag.ContinueOnError)
		format := fs.String("format", "", "battle format")
		notes := fs.String("notes", "", "free-form notes")
		if err := fs.Parse(rest); err != nil {
			return vgcerr.InvalidArgument(err.Error())
		}
		if err := requireArgs(fs.Args(), 1, "replays save [-format f] [-notes n] <replay-url-or-id>"); err != nil {
			return err
		}
		ref := fs.Arg(0)
		input := &vgcapi.SaveReplayInput{
			ReplayID: replays.ReplayIDFromURL(ref),
			Format:   *format,
			Notes:    *notes,
		}
		if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
			input.URL = ref
		}
		saved, err := svc.Save(ctx, uid, input)
		if err != nil {
			return err
		}
		return a.print(saved)

	case "delete":
		if err := requireArgs(rest, 1, "replays delete <saved-id>"); err != nil {
			return err
		}
		if err := svc.Delete(ctx, uid, rest[0]); err != nil {
			return err
		}
		return a.print(svc.Selection())

	case "selection":
		details, err := svc.SelectedDetails(ctx, uid)
		if err != nil {
			return err
		}
		return a.print(details)

	case "analytics":
		fs := flag.NewFlagSet("replays analytics", flag.ContinueOnError)
		format := fs.String("format", "", "battle format")
		if err := fs.Parse(rest); err != nil {
			return vgcerr.InvalidArgument(err.Error())
		}
		result, err := svc.RunAnalytics(ctx, uid, *format)
		if err != nil {
			return err
		}
		return a.print(result)
	}
	return nil
}

func runRankings(ctx context.Context, a *app, args []string) error {
	verb, rest, err := subcommand("rankings", args, "months", "formats", "list", "games", "game-formats")
	if err != nil {
		return err
	}
	svc := a.provider.Rankings

	switch verb {
	case "months":
		months, err := svc.Months(ctx)
		if err != nil {
			return err
		}
		return a.print(months)

	case "formats":
		if len(rest) == 0 {
			months, err := svc.Months(ctx)
			if err != nil {
				return err
			}
			rest = months
		}
		byMonth, err := svc.FormatsByMonth(ctx, rest...)
		if err != nil {
			return err
		}
		return a.print(byMonth)

	case "list":
		fs := flag.NewFlagSet("rankings list", flag.ContinueOnError)
		month := fs.String("month", "", "month, e.g. 2024-05 (default newest)")
		format := fs.String("format", "", "format (default the month's first)")
		rating := fs.Int("rating", 0, "minimum rating cutoff")
		limit := fs.Int("limit", 0, "maximum rows")
		share := fs.Bool("share", false, "post the page to Discord")
		if err := fs.Parse(rest); err != nil {
			return vgcerr.InvalidArgument(err.Error())
		}
		page, err := svc.Rankings(ctx, &vgcapi.RankingsQuery{
			Month:  *month,
			Format: *format,
			Rating: *rating,
			Limit:  *limit,
		})
		if err != nil {
			return err
		}
		if *share {
			if err := svc.Share(ctx, page); err != nil {
				return err
			}
		}
		return a.print(page)

	case "games":
		games, err := svc.Games(ctx)
		if err != nil {
			return err
		}
		return a.print(games)

	case "game-formats":
		formats, err := svc.GameFormats(ctx)
		if err != nil {
			return err
		}
		return a.print(formats)
	}
	return nil
}

func runPokedex(ctx context.Context, a *app, args []string) error {
	verb, rest, err := subcommand("pokedex", args, "search", "get", "species", "items", "abilities", "moves")
	if err != nil {
		return err
	}
	svc := a.provider.Pokedex

	switch verb {
	case "search":
		results, err := svc.Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		return a.print(results)
	case "get":
		if err := requireArgs(rest, 1, "pokedex get <id-or-name>"); err != nil {
			return err
		}
		p, err := svc.GetPokemon(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(p)
	case "species":
		if err := requireArgs(rest, 1, "pokedex species <id-or-name>"); err != nil {
			return err
		}
		species, err := svc.GetSpecies(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(species)
	case "items":
		items, err := svc.ListItems(ctx)
		if err != nil {
			return err
		}
		return a.print(items)
	case "abilities":
		abilities, err := svc.ListAbilities(ctx)
		if err != nil {
			return err
		}
		return a.print(abilities)
	case "moves":
		moves, err := svc.ListMoves(ctx)
		if err != nil {
			return err
		}
		return a.print(moves)
	}
	return nil
}

func runForum(ctx context.Context, a *app, args []string) error {
	verb, rest, err := subcommand("forum", args, "topics", "topic", "post")
	if err != nil {
		return err
	}
	svc := a.provider.Forum

	switch verb {
	case "topics":
		topics, err := svc.ListTopics(ctx)
		if err != nil {
			return err
		}
		return a.print(topics)
	case "topic":
		if err := requireArgs(rest, 1, "forum topic <topic-id>"); err != nil {
			return err
		}
		topic, err := svc.GetTopic(ctx, rest[0])
		if err != nil {
			return err
		}
		return a.print(topic)
	case "post":
		if err := requireArgs(rest, 2, "forum post <topic-id> <message>"); err != nil {
			return err
		}
		msg, err := svc.PostMessage(ctx, rest[0], strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		return a.print(msg)
	}
	return nil
}

func runTeam(ctx context.Context, a *app, args []string) error {
	verb, rest, err := subcommand("team", args, "available", "suggest", "optimize")
	if err != nil {
		return err
	}
	svc := a.provider.TeamBuilder

	fs := flag.NewFlagSet("team "+verb, flag.ContinueOnError)
	format := fs.String("format", "", "battle format")
	if err := fs.Parse(rest); err != nil {
		return vgcerr.InvalidArgument(err.Error())
	}
	req := &vgcapi.TeamRequest{Format: *format, Team: fs.Args()}

	switch verb {
	case "available":
		names, err := svc.AvailablePokemon(ctx, *format)
		if err != nil {
			return err
		}
		return a.print(names)
	case "suggest":
		suggestions, err := svc.Suggest(ctx, req)
		if err != nil {
			return err
		}
		return a.print(suggestions)
	case "optimize":
		team, err := svc.Optimize(ctx, req)
		if err != nil {
			return err
		}
		return a.print(team)
	}
	return nil
}

func runAuth(ctx context.Context, a *app, args []string) error {
	verb, rest, err := subcommand("auth", args, "whoami", "error", "email-link")
	if err != nil {
		return err
	}

	switch verb {
	case "whoami":
		session, err := auth.RequireSession(ctx)
		if err != nil {
			return err
		}
		return a.print(map[string]any{
			"uid":         session.UID,
			"email":       session.Email,
			"displayName": session.DisplayName,
			"expiresAt":   session.ExpiresAt,
		})

	case "error":
		if err := requireArgs(rest, 1, "auth error <code> [raw message]"); err != nil {
			return err
		}
		raw := strings.Join(rest[1:], " ")
		return a.print(map[string]any{
			"code":    rest[0],
			"known":   auth.Known(rest[0]),
			"message": auth.Message(rest[0], raw),
		})

	case "email-link":
		return runEmailLink(ctx, a, rest)
	}
	return nil
}

func runEmailLink(ctx context.Context, a *app, args []string) error {
	verb, rest, err := subcommand("auth email-link", args, "start", "pending", "complete")
	if err != nil {
		return err
	}
	links := a.provider.EmailLinks

	switch verb {
	case "start":
		if err := requireArgs(rest, 1, "auth email-link start <email>"); err != nil {
			return err
		}
		if err := links.Start(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Check your inbox for a sign-in link.")
		return nil

	case "pending":
		email, ok, err := links.Pending(ctx)
		if err != nil {
			return err
		}
		return a.print(map[string]any{"pending": ok, "email": email})

	case "complete":
		if err := requireArgs(rest, 1, "auth email-link complete <link> [email]"); err != nil {
			return err
		}
		email := ""
		if len(rest) > 1 {
			email = rest[1]
		}
		signIn, err := links.Complete(ctx, rest[0], email)
		if err != nil {
			return err
		}
		return a.print(signIn)
	}
	return nil
}
