// Package share implements the splitter and restorer at the heart of the
// secret-sharing engine: recursively lowering a secret into per-leaf shares
// over an indexed access formula (Splitter), and recombining shares back
// into a secret by walking the same formula bottom-up (Restorer).
//
// # The consistency protocol
//
// Splitter accepts a pre-populated assignment map (used by modification, see
// the top-level secretshare package's Configuration.Modify): thresholds
// detect a pre-existing polynomial consistent with already-known points and
// reuse it; ANDs treat already-restorable children as fixed and only
// re-randomize the remainder; a VAR whose key is already assigned a caller
// value never has that value overwritten by a fresh random draw — only a
// conflicting fresh draw is an error (ErrInconsistent).
//
// Restorer never errors on missing shares: Restore returns ok=false, which
// propagates through AND (making the whole gate unrestorable) and is simply
// skipped by OR and THRESHOLD. This is normal control flow, not a fault.
package share
