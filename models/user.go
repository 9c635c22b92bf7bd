package models

// User carries the password only as a bcrypt digest. The three security
// answers are stored verbatim and compared verbatim on recovery.
type User struct {
	UserID       string `bson:"userid" json:"userid"`
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Answer1      string `bson:"answer1" json:"-"`
	Answer2      string `bson:"answer2" json:"-"`
	Answer3      string `bson:"answer3" json:"-"`
	CreatedAt    int64  `bson:"createdAt" json:"createdAt"`
}
