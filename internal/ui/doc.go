// Package ui implements the terminal dashboard using bubbletea's Elm architecture.
//
// The screen is made of up to three rows that track the [dashboard.Dashboard] draft:
//  1. platform row : Instagram, Twitter, Facebook
//  2. type row : User, Page (shown once a platform is chosen)
//  3. URL form : a text input (shown once a type is chosen)
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. Submissions run in a
// [tea.Cmd] so the event loop never waits on the network; the result arrives as a submitCompleteMsg.
//
// Keyboard navigation uses arrow and vim-style bindings (h/j/k/l, enter, esc, q) with contextual help
// displayed via charmbracelet/bubbles/help.
package ui
