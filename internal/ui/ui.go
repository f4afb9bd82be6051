package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"tunebox/internal/apiclient"
	"tunebox/internal/models"
	"tunebox/internal/player"
	"tunebox/internal/state"
)

// previewLength is the length of provider preview clips in seconds.
const previewLength = 30.0

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CatalogView ViewState = iota
	LikedView
)

// Model represents the TUI application state: a catalog browser and liked-song
// view over a shared player.
type Model struct {
	ctx     context.Context
	api     *apiclient.Client
	state   *state.State
	player  *player.Player
	view    ViewState
	width   int
	height  int
	catalog list.Model
	liked   list.Model
	songs   []models.Song
	loaded  bool
	status  string
	err     error
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, api *apiclient.Client, st *state.State) *Model {
	return &Model{
		ctx:    ctx,
		api:    api,
		state:  st,
		player: player.New(nil),
		view:   CatalogView,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init starts by loading the catalog, preferring the persisted cache.
func (m *Model) Init() tea.Cmd {
	return m.fetchCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.loaded {
			m.catalog.SetSize(msg.Width-4, msg.Height-10)
			m.liked.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case catalogFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.songs = msg.songs
		m.player.SetQueue(msg.songs)
		m.rebuildLists()
		m.loaded = true
		if msg.cached {
			m.status = "catalog loaded from cache"
		} else {
			m.status = fmt.Sprintf("fetched %d songs", len(msg.songs))
		}
		return m, nil

	case trackReadyMsg:
		m.player.Loaded(msg.duration)
		return m, m.tick()

	case tickMsg:
		m.player.Tick(1)
		if m.player.Status() == player.StatusLoading {
			// The previous track ran out and the machine advanced.
			return m, m.loadTrack()
		}
		if m.player.Status() == player.StatusPlaying {
			return m, m.tick()
		}
		return m, nil

	case likedToggledMsg:
		if msg.err != nil {
			m.status = styles.err.Render("sign in to like songs")
			return m, nil
		}
		if msg.liked {
			m.status = "added to liked songs"
		} else {
			m.status = "removed from liked songs"
		}
		m.rebuildLists()
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the current list above the player bar.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if !m.loaded {
		return styles.help.Render("Loading catalog...")
	}

	var body string
	switch m.view {
	case LikedView:
		body = m.liked.View()
	default:
		body = m.catalog.View()
	}

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		body,
		m.renderPlayer(),
		styles.help.Render(m.status),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is open, every key belongs to it.
	if m.loaded && m.activeList().FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if song, ok := m.selectedSong(); ok {
			for i, queued := range m.player.Queue() {
				if queued.ID == song.ID {
					m.player.Select(i)
					return m, m.loadTrack()
				}
			}
		}
		return m, nil

	case " ":
		m.player.Toggle()
		if m.player.Status() == player.StatusPlaying {
			return m, m.tick()
		}
		return m, nil

	case "n":
		m.player.Next()
		return m, m.loadTrack()

	case "p":
		m.player.Prev()
		return m, m.loadTrack()

	case "right":
		m.player.Seek(m.player.Position() + 5)
		return m, nil

	case "left":
		m.player.Seek(m.player.Position() - 5)
		return m, nil

	case "+", "=":
		m.player.SetVolume(m.player.Volume() + 0.1)
		return m, nil

	case "-":
		m.player.SetVolume(m.player.Volume() - 0.1)
		return m, nil

	case "m":
		m.player.ToggleMute()
		return m, nil

	case "l":
		if song, ok := m.selectedSong(); ok {
			return m, m.toggleLiked(song)
		}
		return m, nil

	case "L":
		if m.view == LikedView {
			m.view = CatalogView
		} else {
			m.view = LikedView
		}
		return m, nil

	case "esc":
		m.view = CatalogView
		return m, nil
	}

	return m.updateLists(msg)
}

func (m *Model) activeList() *list.Model {
	if m.view == LikedView {
		return &m.liked
	}
	return &m.catalog
}

func (m *Model) selectedSong() (models.Song, bool) {
	if !m.loaded {
		return models.Song{}, false
	}
	if item, ok := m.activeList().SelectedItem().(songItem); ok {
		return item.song, true
	}
	return models.Song{}, false
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case LikedView:
		m.liked, cmd = m.liked.Update(msg)
	default:
		m.catalog, cmd = m.catalog.Update(msg)
	}
	return m, cmd
}

// rebuildLists recreates both lists so liked markers stay current.
func (m *Model) rebuildLists() {
	items := make([]list.Item, len(m.songs))
	for i, song := range m.songs {
		items[i] = songItem{song: song, liked: m.state.IsLiked(song.ID)}
	}
	m.catalog = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
	m.catalog.Title = "Catalog"

	likedSongs := m.state.LikedSongs()
	likedItems := make([]list.Item, len(likedSongs))
	for i, song := range likedSongs {
		likedItems[i] = songItem{song: song, liked: true}
	}
	m.liked = list.New(likedItems, list.NewDefaultDelegate(), m.width-4, m.height-10)
	m.liked.Title = "Liked Songs"
}

func (m *Model) renderPlayer() string {
	current, ok := m.player.Current()
	if !ok {
		return styles.help.Render("nothing playing")
	}

	var icon string
	switch m.player.Status() {
	case player.StatusLoading:
		icon = "…"
	case player.StatusPlaying:
		icon = "▶"
	case player.StatusPaused:
		icon = "⏸"
	default:
		icon = "■"
	}

	volume := fmt.Sprintf("vol %d%%", int(m.player.Volume()*100))
	if m.player.Muted() {
		volume = "muted"
	}

	return fmt.Sprintf("%s %s — %s  %s  [%.0fs/%.0fs]  %s",
		icon,
		styles.title.Render(current.Title),
		styles.accent.Render(current.Artist),
		m.player.Status(),
		m.player.Position(),
		m.player.Duration(),
		volume,
	)
}

// fetchCatalog loads the persisted catalog when present, otherwise fetches
// from the API and saves the result for later runs.
func (m *Model) fetchCatalog() tea.Cmd {
	return func() tea.Msg {
		if cached, ok := m.state.CachedCatalog(); ok {
			return catalogFetchedMsg{songs: cached, cached: true}
		}

		songs, err := m.api.ListSongs(m.ctx)
		if err != nil {
			return catalogFetchedMsg{err: err}
		}

		if err := m.state.SaveCatalog(songs); err != nil {
			return catalogFetchedMsg{err: err}
		}

		return catalogFetchedMsg{songs: songs}
	}
}

// loadTrack simulates media loading for the selected preview clip.
func (m *Model) loadTrack() tea.Cmd {
	return func() tea.Msg {
		return trackReadyMsg{duration: previewLength}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) toggleLiked(song models.Song) tea.Cmd {
	return func() tea.Msg {
		liked, err := m.state.ToggleLiked(song)
		return likedToggledMsg{liked: liked, err: err}
	}
}
