package validation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/livecheck/pkg/observable"
	"github.com/dmitrymomot/livecheck/pkg/validation"
	"github.com/dmitrymomot/livecheck/pkg/validator"
)

type form struct {
	A, B string
}

func nonEmpty(get func(*form) string) validation.Predicate[*form] {
	return func(f *form) bool { return get(f) != "" }
}

func TestContext_RequiredAndTooLong(t *testing.T) {
	rec := observable.NewRecord(map[string]any{"Name": ""})
	v := validation.New(rec)
	t.Cleanup(func() { _ = v.Close() })

	require.NoError(t, v.AddCheck("required", validator.Required("Name")))
	require.NoError(t, v.AddCheck("too long", validator.MaxLen(5)("Name")))

	v.Validate()
	msg, ok := v.Message("Name")
	assert.True(t, ok)
	assert.Equal(t, "required", msg)
	assert.True(t, v.HasError())

	rec.Set("Name", "Ann")
	_, ok = v.Message("Name")
	assert.False(t, ok)
	assert.False(t, v.HasError())

	rec.Set("Name", "Annabelle")
	msg, ok = v.Message("Name")
	assert.True(t, ok)
	assert.Equal(t, "too long", msg)

	rec.Set("Name", "")
	msg, _ = v.Message("Name")
	assert.Equal(t, "required", msg)
}

func TestContext_PassingFieldHasNoEntry(t *testing.T) {
	f := &form{A: "x", B: "y"}
	v := validation.New(f)

	require.NoError(t, v.Add("A required", "A", nonEmpty(func(f *form) string { return f.A })))
	require.NoError(t, v.Add("B required", "B", nonEmpty(func(f *form) string { return f.B })))

	v.Validate()
	assert.Empty(t, v.Messages())
	assert.False(t, v.HasError())
	assert.Equal(t, 0, v.Snapshot().Len())
}

func TestContext_ShortCircuit(t *testing.T) {
	f := &form{}
	v := validation.New(f)

	second := 0
	require.NoError(t, v.Add("first", "A", func(*form) bool { return false }))
	require.NoError(t, v.Add("second", "A", func(*form) bool {
		second++
		return false
	}))

	v.Validate()
	msg, ok := v.Message("A")
	require.True(t, ok)
	assert.Equal(t, "first", msg)
	assert.Equal(t, 0, second, "rules after a failing rule must not run")

	v.FieldChanged("A")
	assert.Equal(t, 0, second)
}

func TestContext_Combination(t *testing.T) {
	t.Run("insufficient while a field fails earlier in its chain", func(t *testing.T) {
		f := &form{A: "x"}
		v := validation.New(f)

		calls := 0
		require.NoError(t, v.Add("B required", "B", nonEmpty(func(f *form) string { return f.B })))
		require.NoError(t, v.AddCombination("A and B differ", func(f *form) bool {
			calls++
			return f.A == f.B
		}, "A", "B"))

		v.Validate()
		assert.Equal(t, 0, calls)
		assert.Equal(t, map[string]string{"B": "B required"}, v.Messages())
		_, ok := v.Message("A")
		assert.False(t, ok, "insufficient combination must not publish a message")

		f.B = "y"
		v.FieldChanged("B")
		assert.Equal(t, 1, calls)
		assert.Equal(t, map[string]string{
			"A": "A and B differ",
			"B": "A and B differ",
		}, v.Messages())

		f.A = "y"
		v.FieldChanged("A")
		assert.Equal(t, 2, calls)
		assert.Empty(t, v.Messages())
	})

	t.Run("predicate runs once per pass", func(t *testing.T) {
		f := &form{A: "x", B: "y"}
		v := validation.New(f)

		calls := 0
		require.NoError(t, v.AddCombination("differ", func(f *form) bool {
			calls++
			return f.A == f.B
		}, "A", "B"))

		v.Validate()
		assert.Equal(t, 1, calls)

		entry, ok := v.Snapshot().Direct("A")
		require.True(t, ok)
		assert.Equal(t, []string{"A", "B"}, entry.Fields)
	})

	t.Run("message reaches fields without own failure", func(t *testing.T) {
		f := &form{A: "x", B: "y"}
		v := validation.New(f)

		require.NoError(t, v.Add("B too short", "B", func(f *form) bool { return len(f.B) > 3 }))
		require.NoError(t, v.AddCombination("differ", func(f *form) bool { return f.A == f.B }, "A", "B"))

		v.Validate()
		msg, ok := v.Message("B")
		require.True(t, ok)
		assert.Equal(t, "B too short", msg)
		_, ok = v.Message("A")
		assert.False(t, ok)
	})
}

func TestContext_RelatedFields(t *testing.T) {
	f := &form{A: "a", B: "b"}
	v := validation.New(f)

	require.NoError(t, v.Add("must match B", "A", func(f *form) bool { return f.A == f.B }, "B"))

	v.Validate()
	msg, ok := v.Message("A")
	require.True(t, ok)
	assert.Equal(t, "must match B", msg)

	f.B = "a"
	v.FieldChanged("B")
	_, ok = v.Message("A")
	assert.False(t, ok, "changing a referenced field re-checks the rule")
}

func TestContext_CycleSafety(t *testing.T) {
	f := &form{A: "a", B: "b"}
	v := validation.New(f)

	var aCalls, bCalls int
	require.NoError(t, v.Add("A needs B", "A", func(f *form) bool {
		aCalls++
		return f.B != ""
	}, "B"))
	require.NoError(t, v.Add("B needs A", "B", func(f *form) bool {
		bCalls++
		return f.A != ""
	}, "A"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		v.Validate()
		v.FieldChanged("A")
		v.FieldChanged("B")
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("validation did not terminate")
	}

	assert.Positive(t, aCalls)
	assert.Positive(t, bCalls)
	assert.False(t, v.HasError())
}

func TestContext_Idempotent(t *testing.T) {
	f := &form{}
	v := validation.New(f)
	require.NoError(t, v.Add("A required", "A", nonEmpty(func(f *form) string { return f.A })))

	notified := 0
	cancel := v.OnChange(func() { notified++ })
	defer cancel()

	v.Validate()
	first := v.Messages()
	v.Validate()

	assert.Equal(t, first, v.Messages())
	assert.Equal(t, 1, notified)

	v.FieldChanged("A")
	assert.Equal(t, 1, notified, "unchanged result must not notify")

	f.A = "x"
	v.FieldChanged("A")
	assert.Equal(t, 2, notified)

	cancel()
	f.A = ""
	v.FieldChanged("A")
	assert.Equal(t, 2, notified)
}

func TestContext_FieldChanged(t *testing.T) {
	t.Run("unknown field is ignored", func(t *testing.T) {
		v := validation.New(&form{})
		require.NoError(t, v.Add("A required", "A", nonEmpty(func(f *form) string { return f.A })))
		v.FieldChanged("Unknown")
		assert.False(t, v.HasError())
	})

	t.Run("all fields runs a full pass", func(t *testing.T) {
		v := validation.New(&form{})
		require.NoError(t, v.Add("A required", "A", nonEmpty(func(f *form) string { return f.A })))
		v.FieldChanged(observable.AllFields)
		assert.True(t, v.HasError())
	})

	t.Run("other fields keep their messages", func(t *testing.T) {
		f := &form{}
		v := validation.New(f)
		require.NoError(t, v.Add("A required", "A", nonEmpty(func(f *form) string { return f.A })))
		require.NoError(t, v.Add("B required", "B", nonEmpty(func(f *form) string { return f.B })))
		v.Validate()

		f.A = "x"
		v.FieldChanged("A")
		assert.Equal(t, map[string]string{"B": "B required"}, v.Messages())
	})
}

func TestContext_Registration(t *testing.T) {
	v := validation.New(&form{})
	ok := func(*form) bool { return true }

	assert.ErrorIs(t, v.Add("", "A", ok), validation.ErrEmptyMessage)
	assert.ErrorIs(t, v.Add("msg", "A", nil), validation.ErrNilPredicate)
	assert.ErrorIs(t, v.Add("msg", "", ok), validation.ErrEmptyField)
	assert.ErrorIs(t, v.Add("msg", "A", ok, ""), validation.ErrEmptyField)
	assert.ErrorIs(t, v.AddCombination("msg", ok), validation.ErrNoFields)
	assert.ErrorIs(t, v.AddCombination("", ok, "A"), validation.ErrEmptyMessage)
	assert.ErrorIs(t, v.AddCombination("msg", nil, "A"), validation.ErrNilPredicate)
	assert.ErrorIs(t, v.AddCombination("msg", ok, "A", ""), validation.ErrEmptyField)
	assert.ErrorIs(t, v.AddCheck("msg", validator.Required("A")), validation.ErrNoReader)
	assert.ErrorIs(t, v.AddCheck("msg", validator.Check{Field: "A"}), validation.ErrNilPredicate)
	assert.ErrorIs(t, v.ConnectContext(nil), validation.ErrNilChild)
	assert.ErrorIs(t, v.ConnectList(nil), validation.ErrNilChild)
}

func TestContext_Reader(t *testing.T) {
	t.Run("custom reader", func(t *testing.T) {
		f := &form{A: "12"}
		v := validation.New(f, validation.WithReader(func(f *form, field string) (any, bool) {
			switch field {
			case "A":
				return f.A, true
			case "B":
				return f.B, true
			}
			return nil, false
		}))

		require.NoError(t, v.AddCheck("digits only", validator.Digit("A")))
		require.NoError(t, v.AddCheck("B required", validator.Required("B")))
		v.Validate()

		assert.Equal(t, map[string]string{"B": "B required"}, v.Messages())
		val, ok := v.Value("A")
		assert.True(t, ok)
		assert.Equal(t, "12", val)
	})

	t.Run("mismatched reader panics", func(t *testing.T) {
		assert.Panics(t, func() {
			validation.New(&form{}, validation.WithReader(func(string, string) (any, bool) { return nil, false }))
		})
	})

	t.Run("no reader", func(t *testing.T) {
		v := validation.New(&form{})
		_, ok := v.Value("A")
		assert.False(t, ok)
	})
}

func TestContext_AutoValidation(t *testing.T) {
	rec := observable.NewRecord(map[string]any{"Name": "x"})
	v := validation.New(rec, validation.WithAutoValidation(false))
	require.NoError(t, v.AddCheck("required", validator.Required("Name")))

	v.Validate()
	assert.False(t, v.HasError())

	rec.Set("Name", "")
	assert.False(t, v.HasError(), "context must not follow the entity")
	assert.Equal(t, 0, rec.Listeners())

	v.FieldChanged("Name")
	assert.True(t, v.HasError())
}

func TestContext_Close(t *testing.T) {
	rec := observable.NewRecord(map[string]any{"Name": "x"})
	v := validation.New(rec)
	require.NoError(t, v.AddCheck("required", validator.Required("Name")))
	v.Validate()
	assert.Equal(t, 1, rec.Listeners())

	sub := v.Changes(context.Background())

	require.NoError(t, v.Close())
	require.NoError(t, v.Close())
	assert.Equal(t, 0, rec.Listeners())

	rec.Set("Name", "")
	assert.False(t, v.HasError())

	_, open := <-sub.Receive(context.Background())
	assert.False(t, open)
}

func TestContext_Changes(t *testing.T) {
	v := validation.New(&form{}, validation.WithEventBuffer(4))
	t.Cleanup(func() { _ = v.Close() })
	require.NoError(t, v.Add("A required", "A", nonEmpty(func(f *form) string { return f.A })))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := v.Changes(ctx)

	v.Validate()

	select {
	case msg := <-sub.Receive(ctx):
		assert.Equal(t, v.ID(), msg.Data.Source)
	case <-time.After(time.Second):
		t.Fatal("no change event")
	}
}

func TestContext_ID(t *testing.T) {
	a := validation.New(&form{})
	b := validation.New(&form{})
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestContext_UnchangedResultKeepsMessage(t *testing.T) {
	f := &form{A: "a"}
	v := validation.New(f)

	require.NoError(t, v.Add("A needs B", "A", nonEmpty(func(f *form) string { return f.B }), "B"))
	require.NoError(t, v.Add("C needs B", "C", nonEmpty(func(f *form) string { return f.B }), "B"))
	v.Validate()

	before, ok := v.Message("B")
	require.True(t, ok)

	notified := 0
	cancel := v.OnChange(func() { notified++ })
	defer cancel()

	v.FieldChanged("A")
	v.FieldChanged("C")
	v.FieldChanged("A")

	after, ok := v.Message("B")
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, 0, notified, "re-publishing the same results must not notify")
}
