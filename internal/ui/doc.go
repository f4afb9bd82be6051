// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides two views over a shared playback state machine:
//  1. [CatalogView] : Browse and search the aggregated catalog
//  2. [LikedView] : Browse the liked-song set
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// The catalog loads from the persisted client cache when one exists, falling back to the API,
// and playback is driven by one-second ticks into the pure player state machine.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, space, n/p, l, q) with contextual
// help displayed via charmbracelet/bubbles/help. The list's built-in "/" filter searches
// title and artist case-insensitively.
package ui
