// Package errors provides structured errors for the hero tracker.
//
// Errors carry a Code, a user-facing message, an optional cause and
// optional metadata. The CLI maps codes to exit statuses with Code.ExitCode.
//
// Creating errors:
//
//	err := errors.NotFound("hero not found")
//	err := errors.InvalidArgumentf("unknown hero class %q", class)
//
// Wrapping keeps the code of the wrapped Error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save hero state")
//	}
//
// Config and input checks use the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("state_key", cfg.StateKey, vb)
//	return vb.Build()
//
// Hero store mutations never return errors; see the hero orchestrator for
// the no-op rules.
package errors
