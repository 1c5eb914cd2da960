package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedZIndexObject_AddChild(t *testing.T) {
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("top", NewBaseObject("top", &NewBaseObjectOpts{ZIndex: 10})))
	require.NoError(t, root.AddChild("bottom", NewBaseObject("bottom", nil)))
	require.NoError(t, root.AddChild("middle", NewBaseObject("middle", &NewBaseObjectOpts{ZIndex: 5})))
	require.NoError(t, root.AddChild("bottom-2", NewBaseObject("bottom-2", nil)))

	var ids []string
	for _, child := range root.GetChildren() {
		ids = append(ids, child.GetID())
	}
	assert.Equal(t, []string{"bottom", "bottom-2", "middle", "top"}, ids)

	assert.Error(t, root.AddChild("top", NewBaseObject("top", nil)))
}

func TestSortedZIndexObject_RemoveChild(t *testing.T) {
	root := NewSortedZIndexObject("root")
	child := NewBaseObject("child", nil)
	require.NoError(t, root.AddChild("child", child))
	assert.Equal(t, root, child.GetParent())

	require.NoError(t, child.RemoveFromParent())
	assert.Empty(t, root.GetChildren())
	assert.Nil(t, child.GetParent())

	assert.Error(t, root.RemoveChild("child"))
}

func TestUpdateTree_RemovesExpiredEffects(t *testing.T) {
	root := NewSortedZIndexObject("root")
	effect := NewTextEffect("effect", NewTextEffectOptions{Text: "quad", TTL: 1})
	require.NoError(t, root.AddChild("effect", effect))
	require.NoError(t, root.AddChild("board", NewBaseObject("board", nil)))

	require.NoError(t, UpdateTree(root))

	require.Len(t, root.GetChildren(), 1)
	assert.Equal(t, "board", root.GetChildren()[0].GetID())
}
