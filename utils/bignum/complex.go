package bignum

import (
	"math/big"
)

// Complex is a type for arbitrary precision complex numbers.
type Complex [2]big.Float

// NewComplex creates a new Complex with "prec" bits of precision.
func NewComplex(x complex128, prec uint) (c *Complex) {
	c = new(Complex)
	c[0].SetPrec(prec).SetFloat64(real(x))
	c[1].SetPrec(prec).SetFloat64(imag(x))
	return
}

// Set sets the receiver to a.
func (c *Complex) Set(a *Complex) *Complex {
	c[0].Set(&a[0])
	c[1].Set(&a[1])
	return c
}

// Clone returns a deep copy of the receiver.
func (c *Complex) Clone() (clone *Complex) {
	clone = new(Complex)
	clone[0].Set(&c[0])
	clone[1].Set(&c[1])
	return
}

// Prec returns the precision of the receiver.
func (c *Complex) Prec() uint {
	return min(c[0].Prec(), c[1].Prec())
}

// SetPrec sets the precision of both components.
func (c *Complex) SetPrec(prec uint) *Complex {
	c[0].SetPrec(prec)
	c[1].SetPrec(prec)
	return c
}

// IsZero returns true if both components are zero.
func (c *Complex) IsZero() bool {
	return c[0].Cmp(new(big.Float)) == 0 && c[1].Cmp(new(big.Float)) == 0
}

// Complex128 returns the receiver as a complex128.
func (c *Complex) Complex128() complex128 {
	re, _ := c[0].Float64()
	im, _ := c[1].Float64()
	return complex(re, im)
}

// Add sets the receiver to a + b.
func (c *Complex) Add(a, b *Complex) *Complex {
	c[0].Add(&a[0], &b[0])
	c[1].Add(&a[1], &b[1])
	return c
}

// Sub sets the receiver to a - b.
func (c *Complex) Sub(a, b *Complex) *Complex {
	c[0].Sub(&a[0], &b[0])
	c[1].Sub(&a[1], &b[1])
	return c
}

// ComplexMultiplier is a struct carrying the scratch space for the
// multiplication and division of two arbitrary precision complex numbers.
type ComplexMultiplier struct {
	tmp [4]big.Float
}

// NewComplexMultiplier creates a new ComplexMultiplier.
func NewComplexMultiplier() *ComplexMultiplier {
	return new(ComplexMultiplier)
}

// Mul sets c = a * b.
func (cEval *ComplexMultiplier) Mul(a, b, c *Complex) {
	t := &cEval.tmp
	t[0].Mul(&a[0], &b[0])
	t[1].Mul(&a[1], &b[1])
	t[2].Mul(&a[0], &b[1])
	t[3].Mul(&a[1], &b[0])
	c[0].Sub(&t[0], &t[1])
	c[1].Add(&t[2], &t[3])
}

// Quo sets c = a / b.
func (cEval *ComplexMultiplier) Quo(a, b, c *Complex) {
	t := &cEval.tmp

	den := new(big.Float)
	t[0].Mul(&b[0], &b[0])
	t[1].Mul(&b[1], &b[1])
	den.Add(&t[0], &t[1])

	t[0].Mul(&a[0], &b[0])
	t[1].Mul(&a[1], &b[1])
	t[2].Mul(&a[1], &b[0])
	t[3].Mul(&a[0], &b[1])

	c[0].Add(&t[0], &t[1])
	c[0].Quo(&c[0], den)
	c[1].Sub(&t[2], &t[3])
	c[1].Quo(&c[1], den)
}
