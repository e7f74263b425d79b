// Package risk provides FAIR-style loss-expectancy arithmetic for putting a
// dollar figure on an architectural risk and judging whether a proposed
// control investment pays for itself.
package risk
