// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenge_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"code.hybscloud.com/lamb/challenge"
)

type memRecorder struct {
	mu   sync.Mutex
	done map[string]string
}

func (m *memRecorder) MarkCompleted(_ context.Context, id, runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done == nil {
		m.done = make(map[string]string)
	}
	m.done[id] = runID
	return nil
}

func mustLookup(t *testing.T, id string) *challenge.Challenge {
	t.Helper()
	c, ok := challenge.Lookup(id)
	require.True(t, ok, "challenge %q missing", id)
	return c
}

func TestReferenceSolutionsPass(t *testing.T) {
	r := challenge.NewRunner(challenge.WithLogger(zap.NewNop()), challenge.WithParallelism(2))
	reports, err := r.Verify(context.Background(), challenge.All())
	require.NoError(t, err)
	require.Len(t, reports, len(challenge.All()))
	for _, rep := range reports {
		assert.True(t, rep.Passed, "%s: %d/%d", rep.ChallengeID, rep.PassedCount(), len(rep.Results))
		assert.NotEmpty(t, rep.RunID)
	}
}

func TestVerifyReportsBrokenReference(t *testing.T) {
	broken := *mustLookup(t, "identity")
	broken.Solution = "var I = func(x any) any { return 0 }"

	r := challenge.NewRunner()
	reports, err := r.Verify(context.Background(), []*challenge.Challenge{&broken})
	require.ErrorIs(t, err, challenge.ErrReferenceFailed)
	assert.ErrorContains(t, err, "identity")
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Passed)
}

func TestWrongSolutionFails(t *testing.T) {
	r := challenge.NewRunner()
	tests := []struct {
		id  string
		src string
	}{
		{"identity", "var I = func(x any) any { return 0 }"},
		{"not", "var NOT = func(b any) any { return b }"},
		{"add", "var ADD = func(n any) any { return func(m any) any { return m } }"},
		{"mult", "var MULT = func(n any) any { return func(m any) any { return ap(ADD2, n, m) } }\nvar ADD2 = func(n any) any { return func(m any) any { return ap(n, SUCC, m) } }"},
		{"fst", "var FST = func(p any) any { return ap(p, FALSE) }"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rep, err := r.Run(context.Background(), mustLookup(t, tt.id), tt.src)
			require.NoError(t, err)
			assert.False(t, rep.Passed)
			assert.Less(t, rep.PassedCount(), len(rep.Results))
		})
	}
}

func TestFailedCaseCarriesDiff(t *testing.T) {
	r := challenge.NewRunner()
	rep, err := r.Run(context.Background(), mustLookup(t, "identity"), "var I = func(x any) any { return 0 }")
	require.NoError(t, err)

	first := rep.Results[0]
	assert.False(t, first.Passed)
	assert.Equal(t, 5, first.Want)
	assert.Equal(t, 0, first.Got)
	assert.NotEmpty(t, first.Diff)
	assert.NoError(t, first.Err)
}

func TestPanicFailsOnlyTheCase(t *testing.T) {
	r := challenge.NewRunner()
	src := `var I = func(x any) any {
	if x == nil {
		panic("no nil please")
	}
	return x
}`
	rep, err := r.Run(context.Background(), mustLookup(t, "identity"), src)
	require.NoError(t, err)
	require.Len(t, rep.Results, 4)
	assert.False(t, rep.Passed)

	assert.True(t, rep.Results[0].Passed)
	assert.True(t, rep.Results[1].Passed)
	assert.False(t, rep.Results[2].Passed)
	assert.ErrorIs(t, rep.Results[2].Err, challenge.ErrPanic)
	assert.Contains(t, rep.Results[2].Err.Error(), "no nil please")
	assert.True(t, rep.Results[3].Passed)
}

func TestEndlessLoopTimesOutAndStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	r := challenge.NewRunner(challenge.WithTimeout(200 * time.Millisecond))
	rep, err := r.Run(context.Background(), mustLookup(t, "identity"), "var I = func(x any) any { for { } }")
	require.NoError(t, err)
	assert.False(t, rep.Passed)
	require.Len(t, rep.Results, 4)
	for _, res := range rep.Results {
		assert.ErrorIs(t, res.Err, challenge.ErrTimeout, res.Description)
	}
}

func TestSubmissionForms(t *testing.T) {
	r := challenge.NewRunner()
	tests := []struct {
		name string
		src  string
	}{
		{"var", "var K = func(x any) any { return func(y any) any { return x } }"},
		{"func decl", "func K(x any) any { return func(y any) any { return x } }"},
		{"package clause", "package main\n\nvar K = func(x any) any { return func(y any) any { return x } }"},
		{"comment first", "// K keeps x\nvar K = func(x any) any { return func(y any) any { return x } }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := r.Run(context.Background(), mustLookup(t, "constant"), tt.src)
			require.NoError(t, err)
			assert.True(t, rep.Passed)
		})
	}
}

func TestAllowedImportAndOutput(t *testing.T) {
	r := challenge.NewRunner()
	src := `import "fmt"

var I = func(x any) any {
	fmt.Println("called")
	return x
}`
	rep, err := r.Run(context.Background(), mustLookup(t, "identity"), src)
	require.NoError(t, err)
	assert.True(t, rep.Passed)
	assert.Contains(t, rep.Results[0].Output, "called")
}

func TestRejectedSubmissions(t *testing.T) {
	r := challenge.NewRunner(challenge.WithAllowedImports("strings"))
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"forbidden import", "import \"os\"\n\nvar I = func(x any) any { os.Exit(1); return x }", challenge.ErrForbiddenImport},
		{"not in narrowed allowlist", "import \"fmt\"\n\nvar I = func(x any) any { fmt.Print(); return x }", challenge.ErrForbiddenImport},
		{"syntax", "var I = func(x any) any { return x", challenge.ErrSyntax},
		{"missing export", "var J = func(x any) any { return x }", challenge.ErrMissingExport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Run(context.Background(), mustLookup(t, "identity"), tt.src)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCompileErrorFailsEveryCase(t *testing.T) {
	r := challenge.NewRunner()
	rep, err := r.Run(context.Background(), mustLookup(t, "true"), "var TRUE = func(x any) any { return undefinedName }")
	require.NoError(t, err)
	assert.False(t, rep.Passed)
	for _, res := range rep.Results {
		assert.Error(t, res.Err, res.Description)
	}
}

func TestRecorder(t *testing.T) {
	rec := &memRecorder{}
	r := challenge.NewRunner(challenge.WithRecorder(rec))
	ctx := context.Background()

	_, err := r.Run(ctx, mustLookup(t, "kite"), "var KI = func(x any) any { return func(y any) any { return x } }")
	require.NoError(t, err)
	assert.NotContains(t, rec.done, "kite")

	rep, err := r.Run(ctx, mustLookup(t, "kite"), mustLookup(t, "kite").Solution)
	require.NoError(t, err)
	require.True(t, rep.Passed)
	assert.Equal(t, rep.RunID, rec.done["kite"])
}

func TestRunIDsAreUnique(t *testing.T) {
	r := challenge.NewRunner()
	c := mustLookup(t, "zero")
	a, err := r.Run(context.Background(), c, c.Solution)
	require.NoError(t, err)
	b, err := r.Run(context.Background(), c, c.Solution)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}
