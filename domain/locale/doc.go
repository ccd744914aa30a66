// Package locale parses amounts written in the European (pt_PT) number
// format: '.' groups thousands and ',' introduces the fractional part.
//
// The accepted grammar is strict and anchored:
//
//	[1-9]\d{0,2}(\.\d{3})*(,\d+)?
//
// so "1.234,5" is 1234.5 while "1234", "0,5", "1.23" and "1,234.5" are
// rejected. A string either matches in full or yields no value.
package locale
