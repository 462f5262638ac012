// Package panelservice manages the competition panel: judges with their
// assigned categories, administrators, and credential checks at login.
package panelservice
