package snowbench

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// User mirrors the user object of the chat API the sample payloads come
// from.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"global_name"`
	Avatar        string `json:"avatar"`
	Bot           bool   `json:"bot"`
	Flags         int    `json:"flags"`
}

// sampleUser is the fixed user document for the extended suite.
const sampleUser = `{"id":"123456789012345678","username":"alice","discriminator":"1234",` +
	`"global_name":"Alice","avatar":"abc123","bot":true,"flags":64}`

// ExtendedSuite returns the default suite followed by the snowflake and
// model operations. The four default operations keep their names and
// relative order; the extension only appends.
func ExtendedSuite() (*Suite, error) {
	suite, err := DefaultSuite()
	if err != nil {
		return nil, err
	}

	sampleBytes := []byte(SamplePayload)
	userBytes := []byte(sampleUser)

	var user User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		return nil, fmt.Errorf("building sample user: %w", err)
	}
	id, err := ParseSnowflake(user.ID)
	if err != nil {
		return nil, err
	}

	suite.Operations = append(suite.Operations,
		Operation{Name: "BM_JSON_Get_Snowflake_Buffer", Fn: func() error {
			raw, err := jsonparser.GetString(sampleBytes, "id")
			if err != nil {
				return err
			}
			_, err = ParseSnowflake(raw)
			return err
		}},
		Operation{Name: "BM_Snowflake_Parse", Fn: func() error {
			_, err := ParseSnowflake("123456789012345678")
			return err
		}},
		Operation{Name: "BM_Snowflake_To_String", Fn: func() error {
			_ = id.String()
			return nil
		}},
		Operation{Name: "BM_JSON_Model_User_Parse", Fn: func() error {
			var u User
			return json.Unmarshal(userBytes, &u)
		}},
		Operation{Name: "BM_JSON_Model_User_Serialize", Fn: func() error {
			_, err := json.Marshal(user)
			return err
		}},
	)
	return suite, nil
}
