// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lingopress/pkg/slice"
)

func TestUnique_KeepsFirstOccurrence(t *testing.T) {
	assert.Equal(t, []string{"go", "news", "tips"}, slice.Unique([]string{"go", "news", "go", "tips", "news"}))
	assert.Empty(t, slice.Unique[string](nil))
}

func TestFilter_NeverNil(t *testing.T) {
	result := slice.Filter([]int{1, 3, 5}, func(v int) bool { return v%2 == 0 })
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4}, slice.Map([]int{1, 2}, func(v int) int { return v * 2 }))
	assert.Nil(t, slice.Map[int, int](nil, func(v int) int { return v }))
}
