// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package smartmatch turns a five-answer preference set into the three Oscar
Best Picture nominees that fit it best.

A request runs through four stages:

  - Filter: keep tagged nominees in the requested decade, then keep the
    requested popularity bracket. Bracket bounds are percentiles of the vote
    counts of the decade-filtered pool (see Thresholds).
  - Score: every candidate gets a 0-98 match score built from mood, genre,
    runtime and bonus components. The weight profile depends on how many
    genres the user picked (see ScoringConfig.WeightsFor).
  - Select: the top three by score, ties kept in catalog order.
  - Explain: each selected movie gets a reason through a ReasonResolver,
    which is expected to consult a cache before generating text.

Usage:

	svc, err := smartmatch.NewService(cfg, catalog, resolver, logger)
	if err != nil {
	    return err
	}
	res, err := svc.ScoreAndRecommend(ctx, &prefs)
	switch {
	case errors.Is(err, smartmatch.ErrNoCandidates):
	    // ask the user to relax decade or popularity
	case errors.Is(err, smartmatch.ErrCatalogUnavailable):
	    // retry later
	}

The Scorer is stateless and safe for concurrent use. Service scores
candidates on a bounded worker pool and resolves reasons concurrently.
*/
package smartmatch
