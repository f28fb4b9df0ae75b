// Package shared holds the layout and the building blocks every page renders with.
package shared
