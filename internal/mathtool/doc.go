// Package mathtool holds the arithmetic behind the MathHelper commands:
// rectangle and box measurements, unit conversion, digit and divisor
// inspection, primality, a single-operator calculator, Pick's theorem,
// and factorials.
package mathtool
