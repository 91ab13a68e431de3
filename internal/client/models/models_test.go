package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUserProfile_Merge_OverwritesOnlyProvidedFields(t *testing.T) {
	u := UserProfile{ID: "u1", Name: "Ann", Role: RoleFreelancer, Bio: "old", Skills: []string{"go"}}

	got := u.Merge(ProfilePatch{Bio: ptr("new bio")})

	want := UserProfile{ID: "u1", Name: "Ann", Role: RoleFreelancer, Bio: "new bio", Skills: []string{"go"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Merge mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "old", u.Bio, "receiver must not change")
}

func TestUserProfile_Merge_EmptySkillsClears(t *testing.T) {
	u := UserProfile{Skills: []string{"go", "sql"}}
	got := u.Merge(ProfilePatch{Skills: []string{}})
	assert.Empty(t, got.Skills)
	assert.Len(t, u.Skills, 2)
}

func TestUserProfile_CloneIsDeep(t *testing.T) {
	u := UserProfile{Skills: []string{"go"}}
	c := u.Clone()
	c.Skills[0] = "rust"
	assert.Equal(t, "go", u.Skills[0])
}

func TestPatchFrom(t *testing.T) {
	srv := UserProfile{Name: "Bo", Bio: "b", Skills: []string{"x"}, ProfilePic: "http://pic"}
	got := UserProfile{ID: "u2", Role: RoleClient}.Merge(PatchFrom(srv))
	assert.Equal(t, "u2", got.ID)
	assert.Equal(t, RoleClient, got.Role)
	assert.Equal(t, "Bo", got.Name)
	assert.Equal(t, []string{"x"}, got.Skills)
	assert.Equal(t, "http://pic", got.ProfilePic)
}

func TestOwnerRef_DecodesStringAndObject(t *testing.T) {
	var a, b, c Gig
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"g1","user":"u1"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"g2","user":{"_id":"u2","name":"Ann"}}`), &b))
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"g3","user":null}`), &c))

	assert.Equal(t, OwnerRef{ID: "u1"}, a.Owner)
	assert.Equal(t, OwnerRef{ID: "u2", Name: "Ann"}, b.Owner)
	assert.Equal(t, OwnerRef{}, c.Owner)
	assert.True(t, b.OwnedBy("u2"))
	assert.False(t, c.OwnedBy(""))
}

func TestGig_LowestPrice(t *testing.T) {
	assert.Equal(t, 0.0, Gig{}.LowestPrice())
	g := Gig{PricePlans: []PricePlan{{Price: 90}, {Price: 49}, {Price: 120}}}
	assert.Equal(t, 49.0, g.LowestPrice())
}

func TestCategory(t *testing.T) {
	assert.True(t, CategoryMusic.Valid())
	assert.False(t, Category("cooking").Valid())
	assert.Equal(t, "Development", CategoryDevelopment.Label())
	assert.Len(t, Categories, 7)
}

func TestTierAndRole(t *testing.T) {
	assert.True(t, TierPremium.Valid())
	assert.False(t, Tier("basic").Valid())
	assert.True(t, RoleFreelancer.Valid())
	assert.False(t, Role("admin").Valid())
}
