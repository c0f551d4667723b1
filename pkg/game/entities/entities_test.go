package entities

import (
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"netbreach/pkg/game/phase"
)

var easy = []string{"ACCESS", "SYSTEM", "HACKER", "SERVER", "BINARY", "CODING", "SCRIPT", "BYPASS"}

// fixedTarget builds a challenge with a known target
func fixedTarget(t *testing.T, target string) *PasswordChallenge {
	t.Helper()
	p := NewPasswordChallenge(rand.New(rand.NewSource(1)), append(easy, "ACCEDE"))
	p.Target = target
	return p
}

func TestLikeness(t *testing.T) {
	tests := []struct {
		guess, target string
		want          int
	}{
		{"SYSTEM", "ACCESS", 0},
		{"ACCEDE", "ACCESS", 4},
		{"ACCESS", "ACCESS", 6},
		{"ACC", "ACCESS", 3},
		{"ACCESSES", "ACCESS", 6},
		{"", "ACCESS", 0},
	}
	for _, tt := range tests {
		if got := Likeness(tt.guess, tt.target); got != tt.want {
			t.Errorf("Likeness(%q, %q) = %d, want %d", tt.guess, tt.target, got, tt.want)
		}
	}
}

func TestPasswordChallenge_TargetIsCandidate(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		p := NewPasswordChallenge(rand.New(rand.NewSource(seed)), easy)
		if !p.IsCandidate(p.Target) {
			t.Fatalf("seed %d: target %q not a candidate", seed, p.Target)
		}
		if p.AttemptsLeft != DefaultAttempts {
			t.Fatalf("seed %d: AttemptsLeft = %d, want %d", seed, p.AttemptsLeft, DefaultAttempts)
		}
	}
}

func TestPasswordChallenge_InvalidKeepsAttempts(t *testing.T) {
	p := fixedTarget(t, "ACCESS")
	for _, g := range []string{"NOPE", "access", "", "ACCESSX"} {
		if res, _ := p.Guess(g); res != GuessInvalid {
			t.Errorf("Guess(%q) = %v, want GuessInvalid", g, res)
		}
	}
	if p.AttemptsLeft != DefaultAttempts {
		t.Errorf("AttemptsLeft = %d, want %d", p.AttemptsLeft, DefaultAttempts)
	}
}

func TestPasswordChallenge_WrongGuessesLockOut(t *testing.T) {
	p := fixedTarget(t, "ACCESS")

	want := []struct {
		guess    string
		res      GuessResult
		likeness int
	}{
		{"SYSTEM", GuessWrong, 0},
		{"ACCEDE", GuessWrong, 4},
		{"HACKER", GuessWrong, 1},
		{"SERVER", GuessLockout, 0},
	}
	for i, w := range want {
		res, likeness := p.Guess(w.guess)
		if res != w.res || likeness != w.likeness {
			t.Errorf("Guess(%q) = %v, %d, want %v, %d", w.guess, res, likeness, w.res, w.likeness)
		}
		if got := DefaultAttempts - i - 1; p.AttemptsLeft != got {
			t.Errorf("after %q AttemptsLeft = %d, want %d", w.guess, p.AttemptsLeft, got)
		}
	}
}

func TestPasswordChallenge_Correct(t *testing.T) {
	p := fixedTarget(t, "BYPASS")
	p.Guess("SYSTEM")
	if res, _ := p.Guess("BYPASS"); res != GuessCorrect {
		t.Fatalf("Guess(target) = %v, want GuessCorrect", res)
	}
	if !p.Solved {
		t.Error("Solved = false after correct guess")
	}
	if p.AttemptsLeft != DefaultAttempts-1 {
		t.Errorf("AttemptsLeft = %d, want %d", p.AttemptsLeft, DefaultAttempts-1)
	}
}

func TestDecryptionChallenge_HexMatchesSolution(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		d := NewDecryptionChallenge(rand.New(rand.NewSource(seed)))
		n, err := strconv.Atoi(d.Solution)
		if err != nil || n < 0 || n >= 255 {
			t.Fatalf("seed %d: Solution = %q, want integer in [0,255)", seed, d.Solution)
		}
		hex, err := strconv.ParseInt(d.Encrypted[2:], 16, 64)
		if err != nil || int(hex) != n || d.Encrypted[:2] != "0x" || len(d.Encrypted) != 4 {
			t.Fatalf("seed %d: Encrypted = %q does not encode %d", seed, d.Encrypted, n)
		}
	}
}

func TestDecryptionChallenge_StrictCompare(t *testing.T) {
	d := &DecryptionChallenge{Encrypted: "0x07", Solution: "7"}
	tests := []struct {
		in   string
		want bool
	}{
		{"7", true},
		{" 7 ", true},
		{"007", false},
		{"0x07", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.CheckSolution(tt.in); got != tt.want {
			t.Errorf("CheckSolution(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewTrace(t *testing.T) {
	re := regexp.MustCompile(`^OVERRIDE-[0-9A-Z]{6}$`)
	for seed := int64(0); seed < 50; seed++ {
		tr := NewTrace(rand.New(rand.NewSource(seed)), phase.DirectoryHunt)
		if !re.MatchString(tr.TargetCode) {
			t.Fatalf("TargetCode = %q, want OVERRIDE-XXXXXX", tr.TargetCode)
		}
		if tr.TimeLeft != TraceSeconds || tr.TotalTime != TraceSeconds {
			t.Fatalf("clock = %d/%d, want %d/%d", tr.TimeLeft, tr.TotalTime, TraceSeconds, TraceSeconds)
		}
		if tr.ReturnPhase != phase.DirectoryHunt {
			t.Fatalf("ReturnPhase = %s, want %s", tr.ReturnPhase, phase.DirectoryHunt)
		}
	}
}

func TestTrace_TickAndProgress(t *testing.T) {
	tr := &Trace{TargetCode: "OVERRIDE-ABC123", TimeLeft: 12, TotalTime: 12}
	if tr.Matches("override-abc123") || !tr.Matches("OVERRIDE-ABC123") {
		t.Fatal("Matches should be an exact compare")
	}
	for i := 1; i < 12; i++ {
		if tr.Tick() {
			t.Fatalf("Tick() %d reported expiry early", i)
		}
	}
	if got := tr.Progress(); got != 91 {
		t.Errorf("Progress() after 11 ticks = %d, want 91", got)
	}
	if !tr.Tick() || !tr.Expired() {
		t.Error("12th Tick() should expire the trace")
	}
	if got := tr.Progress(); got != 100 {
		t.Errorf("Progress() at expiry = %d, want 100", got)
	}
}
