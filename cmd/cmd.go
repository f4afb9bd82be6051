// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand initializes the database and config file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize database and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.SetupDatabase,
	}
}

// serveCommand runs the HTTP API server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the tunebox API server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind, overrides config",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to bind, overrides config",
			},
		},
		Action: r.Serve,
	}
}

// accountCommand groups account operations against the API
func accountCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "account",
		Aliases: []string{"acc"},
		Usage:   "Account operations",
		Commands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "Create an account and start a session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Display name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
				},
				Action: r.Signup,
			},
			{
				Name:  "login",
				Usage: "Authenticate and start a session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Password", Required: true},
				},
				Action: r.Login,
			},
			{
				Name:   "logout",
				Usage:  "Discard the local session",
				Action: r.Logout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the signed-in identity",
				Action: r.WhoAmI,
			},
			{
				Name:  "change-password",
				Usage: "Rotate the account password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "current", Usage: "Current password", Required: true},
					&cli.StringFlag{Name: "new", Usage: "New password", Required: true},
				},
				Action: r.ChangePassword,
			},
			{
				Name:  "update",
				Usage: "Change the display name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "New display name", Required: true},
				},
				Action: r.UpdateProfile,
			},
			{
				Name:  "delete",
				Usage: "Permanently delete the account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "password", Usage: "Password, required to confirm", Required: true},
				},
				Action: r.DeleteAccount,
			},
		},
	}
}

// catalogCommand groups catalog browsing operations
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"cat"},
		Usage:   "Browse the song catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the aggregated catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
					&cli.BoolFlag{Name: "refresh", Usage: "Bypass the local cache"},
					&cli.StringFlag{Name: "search", Usage: "Filter by title or artist"},
				},
				Action: r.CatalogList,
			},
			{
				Name:  "get",
				Usage: "Show a single song by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
					&cli.BoolFlag{Name: "open", Usage: "Open the preview clip in the browser"},
				},
				Action: r.CatalogGet,
			},
			{
				Name:  "export",
				Usage: "Export the catalog to csv, markdown or text",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "csv, markdown or text", Value: "csv"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output path"},
				},
				Action: r.CatalogExport,
			},
		},
	}
}

// likedCommand groups liked-song operations
func likedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "liked",
		Usage: "Liked song operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List liked songs",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.LikedList,
			},
			{
				Name:  "toggle",
				Usage: "Like or unlike a song by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.LikedToggle,
			},
			{
				Name:  "export",
				Usage: "Export liked songs to csv, markdown or text",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "csv, markdown or text", Value: "csv"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output path"},
				},
				Action: r.LikedExport,
			},
		},
	}
}

// tuiCommand launches the interactive player
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "player",
		Aliases: []string{"tui"},
		Usage:   "Launch the interactive catalog browser and player",
		Action:  r.TUI,
	}
}
