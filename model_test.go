package snowbench_test

import (
	"encoding/json"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowbench/snowbench"
)

func TestExtendedSuiteAppendsAfterDefaultOrder(t *testing.T) {
	suite, err := snowbench.ExtendedSuite()
	require.NoError(t, err)

	var names []string
	for _, op := range suite.Operations {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{
		"BM_JSON_Parse",
		"BM_JSON_Parse_Buffer",
		"BM_JSON_Get_Snowflake",
		"BM_JSON_Mut_Serialize",
		"BM_JSON_Get_Snowflake_Buffer",
		"BM_Snowflake_Parse",
		"BM_Snowflake_To_String",
		"BM_JSON_Model_User_Parse",
		"BM_JSON_Model_User_Serialize",
	}, names)
}

func TestExtendedSuiteOperationsSucceed(t *testing.T) {
	suite, err := snowbench.ExtendedSuite()
	require.NoError(t, err)

	for _, op := range suite.Operations {
		for i := 0; i < 3; i++ {
			assert.NoError(t, op.Fn(), op.Name)
		}
	}
}

func TestRawBufferFieldExtraction(t *testing.T) {
	raw, err := jsonparser.GetString([]byte(snowbench.SamplePayload), "id")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678", raw)

	id, err := snowbench.ParseSnowflake(raw)
	require.NoError(t, err)
	assert.Equal(t, snowbench.Snowflake(123456789012345678), id)
}

func TestUserRoundTrip(t *testing.T) {
	user := snowbench.User{
		ID:            "123456789012345678",
		Username:      "alice",
		Discriminator: "1234",
		GlobalName:    "Alice",
		Avatar:        "abc123",
		Bot:           true,
		Flags:         64,
	}

	out, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(out), " ")

	var back snowbench.User
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, user, back)
}
