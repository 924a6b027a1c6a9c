package i18n

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundlesAreSymmetric(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)

	enKeys := translator.Keys(LangEN)
	arKeys := translator.Keys(LangAR)

	sort.Strings(enKeys)
	sort.Strings(arKeys)

	require.NotEmpty(t, enKeys)
	assert.Equal(t, enKeys, arKeys)
}

func TestTranslate(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)

	tests := []struct {
		name     string
		lang     string
		key      string
		vars     map[string]string
		expected string
	}{
		{
			name:     "plain english key",
			lang:     LangEN,
			key:      "customer.notFound",
			expected: "Customer not found",
		},
		{
			name:     "plain arabic key",
			lang:     LangAR,
			key:      "customer.notFound",
			expected: "لم يتم العثور على العميل",
		},
		{
			name:     "placeholder substitution",
			lang:     LangEN,
			key:      "index.ordersTotal",
			vars:     map[string]string{"count": "7"},
			expected: "7 orders total",
		},
		{
			name:     "placeholder left intact without vars",
			lang:     LangEN,
			key:      "index.ordersTotal",
			expected: "{count} orders total",
		},
		{
			name:     "unknown key returns the key",
			lang:     LangEN,
			key:      "does.not.exist",
			expected: "does.not.exist",
		},
		{
			name:     "unknown locale returns the key",
			lang:     "fr",
			key:      "customer.notFound",
			expected: "customer.notFound",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, translator.Translate(tc.lang, tc.key, tc.vars))
		})
	}
}

func TestDirection(t *testing.T) {
	assert.True(t, IsRTL(LangAR))
	assert.False(t, IsRTL(LangEN))
	assert.Equal(t, "rtl", Dir(LangAR))
	assert.Equal(t, "ltr", Dir(LangEN))
}

func TestNewLocale(t *testing.T) {
	locale := NewLocale(LangAR)

	assert.Equal(t, LangAR, locale.Language)
	assert.Equal(t, "rtl", locale.Dir)
	assert.True(t, locale.RTL)
}
