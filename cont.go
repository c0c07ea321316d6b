// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lamb

// Cont is a computation in continuation-passing style.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k, "the rest of the computation".
// Applying k to a value of type A produces the final result of type R.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a value into a continuation.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function that needs direct
// access to its continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// RunCont runs m with the identity continuation. m must not contain
// [Later] steps; use [Reify] and [RunPure] for those.
func RunCont[A any](m Cont[A, A]) A {
	return m(func(a A) A { return a })
}
