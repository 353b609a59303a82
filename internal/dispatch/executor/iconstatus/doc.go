// Package iconstatus computes the tray icon's status tint. Rather than
// swapping between three flat RGB colors, each status is blended from
// neutral gray 72% of the way toward its target hue in CIE-Lab space so the
// normal -> disabled
// and normal -> secure-input transitions read as a tint shift instead of a
// jarring color swap.
package iconstatus
