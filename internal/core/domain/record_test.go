package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("portfolio")
	require.True(t, ok)
	require.Equal(t, KindPortfolio, k)

	_, ok = ParseKind("bikes")
	require.False(t, ok)

	require.True(t, KindMessages.Expires())
	require.True(t, KindConversations.Expires())
	require.False(t, KindUsers.Expires())
}

func TestRecordAccessors(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := Record{"id": "r1", "createdAt": now.Format(time.RFC3339Nano)}

	require.Equal(t, "r1", r.ID())
	got, ok := r.CreatedAt()
	require.True(t, ok)
	require.True(t, now.Equal(got))

	_, ok = Record{"createdAt": "yesterday"}.CreatedAt()
	require.False(t, ok)
	require.Empty(t, Record{"id": 7}.ID())
}

func TestUserPatchOmitsUnsetFields(t *testing.T) {
	name := "Dana"
	f := UserPatch{Name: &name, Specialties: []string{"weddings"}}.Fields()

	require.Equal(t, Fields{"name": "Dana", "specialties": []any{"weddings"}}, f)
}

func TestObjectDataURL(t *testing.T) {
	o := Object{ContentType: "text/plain", Data: []byte("hi")}
	require.Equal(t, "data:text/plain;base64,aGk=", o.DataURL())
}
