// File: intfmt.go
// Title: Integer Formatters
// Description: Implements the configurable IntFormatter (base, width, flags)
//              and the zero-configuration DefaultIntFormatter fast path.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package formatx

// IntFormatter formats integers in base 8, 10, or 16 with optional width
// padding and flags. It is an immutable configuration value; the With*
// methods return new instances.
type IntFormatter struct {
	base  int
	width int
	flags Flags
}

// Oct returns an octal integer formatter with no width and no flags.
func Oct() IntFormatter { return IntFormatter{base: 8} }

// Dec returns a decimal integer formatter with no width and no flags.
func Dec() IntFormatter { return IntFormatter{base: 10} }

// Hex returns a hexadecimal integer formatter with no width and no flags.
func Hex() IntFormatter { return IntFormatter{base: 16} }

// Base returns the configured radix.
func (f IntFormatter) Base() int { return f.base }

// Width returns the configured minimum field width.
func (f IntFormatter) Width() int { return f.width }

// Flags returns the configured flag bits.
func (f IntFormatter) Flags() Flags { return f.flags }

// WithBase returns a copy of f with the radix set to base.
func (f IntFormatter) WithBase(base int) IntFormatter {
	return IntFormatter{base: base, width: f.width, flags: f.flags}
}

// WithWidth returns a copy of f with the minimum field width set to width.
func (f IntFormatter) WithWidth(width int) IntFormatter {
	return IntFormatter{base: f.base, width: width, flags: f.flags}
}

// WithFlags returns a copy of f with the flags replaced by flags.
func (f IntFormatter) WithFlags(flags Flags) IntFormatter {
	return IntFormatter{base: f.base, width: f.width, flags: flags}
}

// Or returns a copy of f with the given flag bits added.
func (f IntFormatter) Or(flags Flags) IntFormatter {
	return IntFormatter{base: f.base, width: f.width, flags: f.flags | flags}
}

// Any reports whether any of the bits in mask are set on f.
func (f IntFormatter) Any(mask Flags) bool { return f.flags.Any(mask) }

// MaxFormattedLength returns the worst-case output length for x: the digit
// count in the configured base, plus one for a sign when x is negative or
// PlusSign is set, and never less than the configured width.
func (f IntFormatter) MaxFormattedLength(x int64) int {
	return maxIntLen(uabs(x), x < 0, f.base, f.width, f.flags)
}

// MaxFormattedLengthUint is MaxFormattedLength for unsigned magnitudes.
func (f IntFormatter) MaxFormattedLengthUint(x uint64) int {
	return maxIntLen(x, false, f.base, f.width, f.flags)
}

// FormattedWrite writes x into buf and returns the number of bytes written.
// buf must hold at least MaxFormattedLength(x) bytes; a smaller buffer is a
// contract violation and panics.
func (f IntFormatter) FormattedWrite(x int64, buf []byte) int {
	return writeInt(uabs(x), x < 0, f.base, f.width, f.flags, buf)
}

// FormattedWriteUint is FormattedWrite for unsigned magnitudes.
func (f IntFormatter) FormattedWriteUint(x uint64, buf []byte) int {
	return writeInt(x, false, f.base, f.width, f.flags, buf)
}

func maxIntLen(u uint64, neg bool, base, width int, flags Flags) int {
	n := ndigits(u, base)
	if neg || flags.Any(PlusSign) {
		n++
	}
	if n < width {
		n = width
	}
	return n
}

// writeInt emits [pad][sign]digits or [sign][zero-pad]digits into buf. The
// sign character always precedes zero padding; that ordering is part of the
// formatter contract.
func writeInt(u uint64, neg bool, base, width int, flags Flags, buf []byte) int {
	nd := ndigits(u, base)
	var sign byte
	if neg {
		sign = '-'
	} else if flags.Any(PlusSign) {
		sign = '+'
	}

	flen := nd
	if sign != 0 {
		flen++
	}
	total := flen
	if width > total {
		total = width
	}
	if len(buf) < total {
		panic("formatx: buffer too small for formatted integer")
	}

	p := 0
	if width > flen {
		pad := width - flen
		if flags.Any(PadZeros) {
			if sign != 0 {
				buf[p] = sign
				p++
			}
			for i := 0; i < pad; i++ {
				buf[p] = '0'
				p++
			}
		} else {
			for i := 0; i < pad; i++ {
				buf[p] = ' '
				p++
			}
			if sign != 0 {
				buf[p] = sign
				p++
			}
		}
	} else if sign != 0 {
		buf[p] = sign
		p++
	}

	extractDigits(u, base, flags.Any(UpperCase), buf[p:p+nd])
	return p + nd
}

// DefaultIntFormatter is the zero-configuration decimal fast path: base 10,
// no width, no flags. Configuring it promotes to a full IntFormatter.
type DefaultIntFormatter struct{}

// DefaultInt returns the zero-configuration decimal formatter.
func DefaultInt() DefaultIntFormatter { return DefaultIntFormatter{} }

// Base returns 10.
func (DefaultIntFormatter) Base() int { return 10 }

// Width returns 0.
func (DefaultIntFormatter) Width() int { return 0 }

// Flags returns the empty flag set.
func (DefaultIntFormatter) Flags() Flags { return 0 }

// WithBase promotes to an IntFormatter with the given radix.
func (DefaultIntFormatter) WithBase(base int) IntFormatter {
	return IntFormatter{base: base}
}

// WithWidth promotes to a decimal IntFormatter with the given width.
func (DefaultIntFormatter) WithWidth(width int) IntFormatter {
	return IntFormatter{base: 10, width: width}
}

// WithFlags promotes to a decimal IntFormatter with the given flags.
func (DefaultIntFormatter) WithFlags(flags Flags) IntFormatter {
	return IntFormatter{base: 10, flags: flags}
}

// Or promotes to a decimal IntFormatter with the given flag bits set.
func (f DefaultIntFormatter) Or(flags Flags) IntFormatter {
	return f.WithFlags(flags)
}

// Any always reports false; the default formatter carries no flags.
func (DefaultIntFormatter) Any(Flags) bool { return false }

// MaxFormattedLength returns the decimal digit count of x plus one for a
// leading minus when x is negative.
func (DefaultIntFormatter) MaxFormattedLength(x int64) int {
	n := ndigitsDec(uabs(x))
	if x < 0 {
		n++
	}
	return n
}

// MaxFormattedLengthUint is MaxFormattedLength for unsigned magnitudes.
func (DefaultIntFormatter) MaxFormattedLengthUint(x uint64) int {
	return ndigitsDec(x)
}

// FormattedWrite writes x in decimal into buf and returns the number of
// bytes written. An undersized buf panics.
func (DefaultIntFormatter) FormattedWrite(x int64, buf []byte) int {
	u := uabs(x)
	nd := ndigitsDec(u)
	p := 0
	if x < 0 {
		if len(buf) < nd+1 {
			panic("formatx: buffer too small for formatted integer")
		}
		buf[0] = '-'
		p = 1
	} else if len(buf) < nd {
		panic("formatx: buffer too small for formatted integer")
	}
	extractDigits(u, 10, false, buf[p:p+nd])
	return p + nd
}

// FormattedWriteUint is FormattedWrite for unsigned magnitudes.
func (DefaultIntFormatter) FormattedWriteUint(x uint64, buf []byte) int {
	nd := ndigitsDec(x)
	if len(buf) < nd {
		panic("formatx: buffer too small for formatted integer")
	}
	extractDigits(x, 10, false, buf[:nd])
	return nd
}
