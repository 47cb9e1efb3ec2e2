// Package lpv identifies Linear Parameter-Varying AutoRegressive models,
// with or without an exogenous input (LPV-AR, LPV-ARX), from sampled data.
//
// The autoregressive coefficients are expanded over a functional basis of a
// measured scheduling variable ξ(t):
//
//	y(t) + Σ_i a_i(ξ(t)) y(t-i) = Σ_k b_k(ξ(t)) x(t-k) + e(t)
//	a_i(ξ) = Σ_j A[j,i] G_j(ξ),   b_k(ξ) = Σ_j B[j,k] G_j(ξ)
//
// Multiplying each lagged signal by each basis function lifts the
// parameter-varying problem into one ordinary least-squares solve. Fit
// builds the lifted regression, estimates the coefficient tensors A and B,
// and attaches residual variance, coefficient covariance and the
// goodness-of-fit criteria used for model-order and basis selection.
// A fitted Model is immutable; Simulate scores it against held-out data
// without re-estimating.
package lpv
