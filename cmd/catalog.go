package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"tunebox/internal/formatter"
	"tunebox/internal/models"
	"tunebox/internal/shared"
	"tunebox/internal/state"
)

// loadCatalog returns songs from the local cache unless refresh is set,
// fetching and caching from the API otherwise.
func (r *Runner) loadCatalog(ctx context.Context, refresh bool) ([]models.Song, error) {
	st, err := r.clientState()
	if err != nil {
		return nil, err
	}

	if !refresh {
		if cached, ok := st.CachedCatalog(); ok {
			r.logger.Debug("catalog loaded from cache", "songs", len(cached))
			return cached, nil
		}
	}

	songs, err := r.api.ListSongs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	if err := st.SaveCatalog(songs); err != nil {
		r.logger.Warn("failed to cache catalog", "error", err)
	}

	return songs, nil
}

// CatalogList prints the aggregated catalog, optionally filtered.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	songs, err := r.loadCatalog(ctx, cmd.Bool("refresh"))
	if err != nil {
		return err
	}

	if query := cmd.String("search"); query != "" {
		songs = state.FilterSongs(songs, query)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writePlain("Found %d songs:\n\n", len(songs))
	for i, song := range songs {
		r.writePlain("%d. %s - %s\n", i+1, song.Artist, song.Title)
		r.writePlain("   ID: %d\n", song.ID)
		if song.Preview != "" {
			r.writePlain("   Preview: %s\n", song.Preview)
		}
	}

	return nil
}

// CatalogGet fetches and prints one song by id.
func (r *Runner) CatalogGet(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("id")
	if raw == "" {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: song id must be numeric, got %q", shared.ErrInvalidArgument, raw)
	}

	song, err := r.api.GetSong(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch song: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(song, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("%s - %s", song.Artist, song.Title))
	r.writePlain("ID: %d\n", song.ID)
	if song.Image != "" {
		r.writePlain("Cover: %s\n", song.Image)
	}
	if song.Preview != "" {
		r.writePlain("Preview: %s\n", song.Preview)
	}

	if cmd.Bool("open") && song.Preview != "" {
		if err := shared.OpenBrowser(song.Preview); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	return nil
}

// CatalogExport writes the catalog in the requested format.
func (r *Runner) CatalogExport(ctx context.Context, cmd *cli.Command) error {
	songs, err := r.loadCatalog(ctx, false)
	if err != nil {
		return err
	}

	return r.exportSongs("Catalog", "catalog", songs, cmd.String("format"), cmd.String("output"))
}

// LikedList prints the liked-song set.
func (r *Runner) LikedList(ctx context.Context, cmd *cli.Command) error {
	st, err := r.clientState()
	if err != nil {
		return err
	}

	songs := st.LikedSongs()

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	if len(songs) == 0 {
		r.writePlain("No liked songs yet\n")
		return nil
	}

	r.writePlain("Liked %d songs:\n\n", len(songs))
	for i, song := range songs {
		r.writePlain("%d. %s - %s\n", i+1, song.Artist, song.Title)
	}

	return nil
}

// LikedToggle likes or unlikes a song by catalog id.
func (r *Runner) LikedToggle(ctx context.Context, cmd *cli.Command) error {
	st, err := r.session()
	if err != nil {
		return err
	}

	raw := cmd.StringArg("id")
	if raw == "" {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: song id must be numeric, got %q", shared.ErrInvalidArgument, raw)
	}

	songs, err := r.loadCatalog(ctx, false)
	if err != nil {
		return err
	}

	for _, song := range songs {
		if song.ID == id {
			liked, err := st.ToggleLiked(song)
			if err != nil {
				return err
			}

			if liked {
				r.writePlain("♥ Liked %s - %s\n", song.Artist, song.Title)
			} else {
				r.writePlain("Removed %s - %s from liked songs\n", song.Artist, song.Title)
			}
			return nil
		}
	}

	return fmt.Errorf("%w: id %d", shared.ErrSongNotFound, id)
}

// LikedExport writes the liked set in the requested format.
func (r *Runner) LikedExport(ctx context.Context, cmd *cli.Command) error {
	st, err := r.clientState()
	if err != nil {
		return err
	}

	return r.exportSongs("Liked Songs", "liked", st.LikedSongs(), cmd.String("format"), cmd.String("output"))
}

func (r *Runner) exportSongs(title, base string, songs []models.Song, format, output string) error {
	if output == "" {
		output = base
		if strings.EqualFold(format, "text") || strings.EqualFold(format, "txt") {
			output = base + "_songs.txt"
		}
	}

	switch strings.ToLower(format) {
	case "csv":
		files, err := formatter.WriteCSVExport(base, songs, output)
		if err != nil {
			return err
		}
		for _, file := range files {
			r.writePlain("✓ Wrote %s\n", file)
		}

	case "markdown", "md":
		result, err := formatter.WriteMarkdownExport(title, songs, output, "")
		if err != nil {
			return err
		}
		for _, file := range result.Files {
			r.writePlain("✓ Wrote %s\n", file)
		}

	case "text", "txt":
		file, err := formatter.WriteTextExport(title, songs, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Wrote %s\n", file)

	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}

	return nil
}
