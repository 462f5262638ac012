package httpserver

import (
	"bytes"
	"net/http"
	"testing"

	judgingdto "artjury/contexts/competition/judging-engine/transport/http"
)

func TestVoteLifecycle(t *testing.T) {
	env := newTestEnv(t)
	judgeToken := env.token(t, env.judge)
	adminToken := env.token(t, env.admin)

	body := `{"artworkId":"art-pho-1","scores":{"techniqueExecution":8,"creativityOriginality":7,"conceptMessage":"high","aestheticImpact":14},"comment":"  strong light  "}`
	expectErrorCode(t, env.do(t, http.MethodPost, "/api/vote", "", body), http.StatusUnauthorized, "unauthenticated")
	expectErrorCode(t, env.do(t, http.MethodPost, "/api/vote", adminToken, body), http.StatusForbidden, "forbidden")

	rr := env.do(t, http.MethodPost, "/api/vote", judgeToken, body)
	expectStatus(t, rr, http.StatusCreated)
	first := decodeBody[judgingdto.VoteResponse](t, rr)
	if first.TotalScore != 25 || first.Comment != "strong light" || first.WasUpdate {
		t.Fatalf("unexpected first vote: %+v", first)
	}

	rr = env.do(t, http.MethodPost, "/api/vote", judgeToken, `{"artworkId":"art-pho-1","scores":{"techniqueExecution":1}}`)
	expectStatus(t, rr, http.StatusOK)
	second := decodeBody[judgingdto.VoteResponse](t, rr)
	if second.VoteID != first.VoteID || !second.WasUpdate || second.TotalScore != 1 {
		t.Fatalf("resubmission should overwrite the same vote: %+v", second)
	}

	rr = env.do(t, http.MethodGet, "/api/vote", judgeToken, "")
	expectStatus(t, rr, http.StatusOK)
	mine := decodeBody[judgingdto.VoteListResponse](t, rr)
	if len(mine.Votes) != 1 || mine.Votes[0].ArtworkCode != "PHO-001" {
		t.Fatalf("unexpected own votes: %+v", mine.Votes)
	}

	expectStatus(t, env.do(t, http.MethodDelete, "/api/vote/"+first.VoteID, judgeToken, ""), http.StatusNoContent)
	expectErrorCode(t, env.do(t, http.MethodDelete, "/api/vote/"+first.VoteID, judgeToken, ""), http.StatusNotFound, "vote_not_found")

	metrics := env.do(t, http.MethodGet, "/metrics", "", "")
	if !bytes.Contains(metrics.Body.Bytes(), []byte(`artjury_votes_submitted_total{outcome="updated"} 1`)) {
		t.Fatalf("expected vote counter, body=%s", metrics.Body.String())
	}
}

func TestVoteValidation(t *testing.T) {
	env := newTestEnv(t)
	judgeToken := env.token(t, env.judge)

	expectErrorCode(t, env.do(t, http.MethodPost, "/api/vote", judgeToken, `{"artworkId":"missing","scores":{}}`),
		http.StatusNotFound, "artwork_not_found")
	resp := expectErrorCode(t, env.do(t, http.MethodPost, "/api/vote", judgeToken, `{"artworkId":"art-pho-1","scores":[1,2]}`),
		http.StatusBadRequest, "validation_failed")
	if resp.Field != "scores" {
		t.Fatalf("expected scores field, got %+v", resp)
	}
	expectErrorCode(t, env.do(t, http.MethodPost, "/api/vote", judgeToken, `{"scores":{}}`),
		http.StatusBadRequest, "validation_failed")
}

func TestVoteCoercesScoresOutsideFloatRange(t *testing.T) {
	env := newTestEnv(t)
	judgeToken := env.token(t, env.judge)

	body := `{"artworkId":"art-pho-1","scores":{"techniqueExecution":7,"creativityOriginality":1e400,"conceptMessage":3.5,"aestheticImpact":-1e400}}`
	rr := env.do(t, http.MethodPost, "/api/vote", judgeToken, body)
	expectStatus(t, rr, http.StatusCreated)
	vote := decodeBody[judgingdto.VoteResponse](t, rr)
	if vote.Scores.CreativityOriginality != 0 || vote.Scores.AestheticImpact != 0 {
		t.Fatalf("out-of-range scores should coerce to 0: %+v", vote.Scores)
	}
	if vote.Scores.TechniqueExecution != 7 || vote.Scores.ConceptMessage != 3.5 || vote.TotalScore != 10.5 {
		t.Fatalf("in-range scores should be kept: %+v total=%v", vote.Scores, vote.TotalScore)
	}
}

func TestResultsAreAdminOnlyAndRanked(t *testing.T) {
	env := newTestEnv(t)
	judgeToken := env.token(t, env.judge)
	adminToken := env.token(t, env.admin)

	votes := []string{
		`{"artworkId":"art-pho-1","scores":{"techniqueExecution":5,"creativityOriginality":5,"conceptMessage":5,"aestheticImpact":5}}`,
		`{"artworkId":"art-pho-2","scores":{"techniqueExecution":9,"creativityOriginality":9,"conceptMessage":9,"aestheticImpact":9}}`,
		`{"artworkId":"art-dig-1","scores":{"techniqueExecution":2}}`,
	}
	for _, body := range votes {
		expectStatus(t, env.do(t, http.MethodPost, "/api/vote", judgeToken, body), http.StatusCreated)
	}

	expectErrorCode(t, env.do(t, http.MethodGet, "/api/results", judgeToken, ""), http.StatusForbidden, "forbidden")
	expectErrorCode(t, env.do(t, http.MethodGet, "/api/results?limit=abc", adminToken, ""), http.StatusBadRequest, "validation_failed")

	rr := env.do(t, http.MethodGet, "/api/results?limit=1", adminToken, "")
	expectStatus(t, rr, http.StatusOK)
	results := decodeBody[judgingdto.ResultsResponse](t, rr)
	if len(results.Votes) != 3 || len(results.ArtworkStats) != 3 {
		t.Fatalf("unexpected results: %d votes, %d stats", len(results.Votes), len(results.ArtworkStats))
	}
	top := results.TopArtworksByCategory["Photography"]
	if len(top) != 1 || top[0].ArtworkID != "art-pho-2" || top[0].AvgScore != 36 {
		t.Fatalf("unexpected photography top: %+v", top)
	}
	if len(results.TopArtworksByCategory["Paintings"]) != 0 {
		t.Fatalf("categories without votes must be empty: %+v", results.TopArtworksByCategory["Paintings"])
	}
	if results.Votes[0].JudgeName != "Judge One" {
		t.Fatalf("expected judge names on votes, got %+v", results.Votes[0])
	}
}

func TestResultsDropStatsForRemovedArtworks(t *testing.T) {
	env := newTestEnv(t)
	judgeToken := env.token(t, env.judge)
	adminToken := env.token(t, env.admin)

	for _, body := range []string{
		`{"artworkId":"art-pho-1","scores":{"techniqueExecution":4}}`,
		`{"artworkId":"art-pho-2","scores":{"techniqueExecution":9}}`,
	} {
		expectStatus(t, env.do(t, http.MethodPost, "/api/vote", judgeToken, body), http.StatusCreated)
	}
	env.catalog.DeleteArtwork("art-pho-2")

	rr := env.do(t, http.MethodGet, "/api/results", adminToken, "")
	expectStatus(t, rr, http.StatusOK)
	results := decodeBody[judgingdto.ResultsResponse](t, rr)
	if len(results.Votes) != 2 {
		t.Fatalf("votes for a removed artwork are still listed, got %d", len(results.Votes))
	}
	if len(results.ArtworkStats) != 1 || results.ArtworkStats[0].ArtworkID != "art-pho-1" {
		t.Fatalf("stats should only cover existing artworks: %+v", results.ArtworkStats)
	}
	top := results.TopArtworksByCategory["Photography"]
	if len(top) != 1 || top[0].ArtworkID != "art-pho-1" {
		t.Fatalf("removed artwork must not rank: %+v", top)
	}
}
