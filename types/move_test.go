/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoveRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.False(t, m.IsSpecial())
}

func TestNewSpecialMoveRoundTrip(t *testing.T) {
	m := NewSpecialMove(SqE7, SqE5)
	assert.Equal(t, SqE7, m.From())
	assert.Equal(t, SqE5, m.To())
	assert.True(t, m.IsSpecial())
}

func TestNewPromotionMoveRoundTrip(t *testing.T) {
	for _, promo := range []PromoCode{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
		m := NewPromotionMove(SqA7, SqA8, promo)
		assert.Equal(t, SqA7, m.From())
		assert.Equal(t, SqA8, m.To())
		assert.True(t, m.IsSpecial())
		assert.Equal(t, promo, m.Promo())
	}
}

func TestNoMoveIsZeroValue(t *testing.T) {
	assert.Equal(t, Move(0), NoMove)
}

func TestCompressExpandCoversAllSquares(t *testing.T) {
	for _, sq := range AllSquares {
		m := NewMove(sq, sq)
		assert.Equal(t, sq, m.From())
		assert.Equal(t, sq, m.To())
	}
}
