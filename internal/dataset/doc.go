// Package dataset turns a raw IMDb CSV export into normalized catalog
// records and provides an inspection report for eyeballing unfamiliar
// exports before processing them.
//
// Column resolution is header-driven, so exports with reordered or extra
// columns still process; only the presence of the Name, Rate, and Genre
// columns is mandatory.
package dataset
