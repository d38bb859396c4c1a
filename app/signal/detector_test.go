package signal

import (
	"testing"
)

func TestDetector_Run_HintTakesPrecedence(t *testing.T) {
	detector := NewDetector([]string{"Siemens", "Bosch"})

	// The hint wins even when the text names a different candidate.
	company := detector.Run("Bosch", "Siemens reports record quarter", "")

	if company != "Bosch" {
		t.Errorf("Expected hint 'Bosch' to be returned unchanged, got '%s'", company)
	}
}

func TestDetector_Run_HintNotValidatedAgainstCandidates(t *testing.T) {
	detector := NewDetector([]string{"Siemens"})

	company := detector.Run("Acme Corp", "Siemens news", "")

	if company != "Acme Corp" {
		t.Errorf("Expected unvalidated hint 'Acme Corp', got '%s'", company)
	}
}

func TestDetector_Run_MatchesTitle(t *testing.T) {
	detector := NewDetector([]string{"Siemens", "Bosch"})

	company := detector.Run("", "Bosch opens new plant in Hungary", "capacity expansion ongoing")

	if company != "Bosch" {
		t.Errorf("Expected 'Bosch', got '%s'", company)
	}
}

func TestDetector_Run_MatchesSummary(t *testing.T) {
	detector := NewDetector([]string{"Siemens", "Bosch"})

	company := detector.Run("", "Industry roundup", "new contract awarded to siemens today")

	if company != "Siemens" {
		t.Errorf("Expected case-insensitive match 'Siemens', got '%s'", company)
	}
}

func TestDetector_Run_WordMatchWithinLongerPhrase(t *testing.T) {
	detector := NewDetector([]string{"Siemens"})

	// "Siemens Energy" still contains the word "Siemens".
	company := detector.Run("", "Siemens Energy wins grid order", "")

	if company != "Siemens" {
		t.Errorf("Expected 'Siemens' from 'Siemens Energy', got '%s'", company)
	}
}

func TestDetector_Run_NoSubstringMatchInsideWord(t *testing.T) {
	detector := NewDetector([]string{"Bosch"})

	company := detector.Run("", "Boschung wins road maintenance deal", "")

	if company != UnknownCompany {
		t.Errorf("Expected '%s' for non-delimited occurrence, got '%s'", UnknownCompany, company)
	}
}

func TestDetector_Run_FirstCandidateInOrderWins(t *testing.T) {
	detector := NewDetector([]string{"Siemens", "Siemens Energy"})

	company := detector.Run("", "Siemens Energy announces partnership", "")

	if company != "Siemens" {
		t.Errorf("Expected first-match policy to pick 'Siemens', got '%s'", company)
	}
}

func TestDetector_Run_RegexSpecialCharacters(t *testing.T) {
	detector := NewDetector([]string{"K+S"})

	company := detector.Run("", "K+S raises production forecast", "")

	if company != "K+S" {
		t.Errorf("Expected literal match for 'K+S', got '%s'", company)
	}
}

func TestDetector_Run_Unknown(t *testing.T) {
	detector := NewDetector([]string{"Siemens", "Bosch"})

	company := detector.Run("", "Random unrelated news", "")

	if company != UnknownCompany {
		t.Errorf("Expected '%s', got '%s'", UnknownCompany, company)
	}
}

func TestDetector_Run_MultiWordCandidate(t *testing.T) {
	detector := NewDetector([]string{"Deutsche Bahn"})

	company := detector.Run("", "Deutsche Bahn modernizes signalling", "")

	if company != "Deutsche Bahn" {
		t.Errorf("Expected phrase match 'Deutsche Bahn', got '%s'", company)
	}
}
