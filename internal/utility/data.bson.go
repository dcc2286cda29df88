package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển một struct sang bson.M thông qua marshal/unmarshal.
// Dùng khi cần ghi nguyên một struct vào update document.
func ToMap(input interface{}) (bson.M, error) {
	data, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}

	var result bson.M
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
