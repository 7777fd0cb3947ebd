// Package scoring computes the three independent ranking metrics over a
// snapshot: the therapeutic gap score, protein hub analysis, and drug
// repurposing scores. All functions are stateless and read-only; malformed
// references are reported as warnings alongside partial results, never as
// errors.
package scoring
