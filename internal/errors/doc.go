// Package errors provides structured errors for questline.
//
// Every error carries a Code. Generic codes cover infrastructure
// problems (NotFound, Internal, Unavailable). Game rule codes cover
// rejected player intents:
//   - PrerequisiteNotMet: a quest was attempted before its dependencies
//   - InvalidCardUse: the card is missing, of the wrong kind, cooling down or spent
//   - NoLivingTarget: an attack found nobody to hit; the turn is skipped
//   - StoryChoiceRequired: a branching choice is still pending
//   - GameEnded: a terminal story branch was reached
//   - Suspended: a timed continuation (thinking delay, breakthrough overlay) is pending
//
// Creating and checking errors:
//
//	err := errors.PrerequisiteNotMetf("quest %d requires quest %d", id, dep)
//	if errors.IsPrerequisiteNotMet(err) {
//	    // surface to the player
//	}
//
// Wrapping keeps the code of the wrapped Error:
//
//	if err := repo.Save(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to save session")
//	}
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.EventBus == nil {
//	    vb.RequiredField("EventBus")
//	}
//	return vb.Build()
package errors
