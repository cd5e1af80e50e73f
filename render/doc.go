// Package render prints labeled grids for people: a raw console dump of the
// bordered buffer, a per-component summary table, and component-size
// quantiles. Nothing here mutates a grid.
package render
