package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusOnline  = "ONLINE"
	StatusOffline = "OFFLINE"
)

type VerificationDetails struct {
	EmailVerified       bool `bson:"isEmailVerified" json:"isEmailVerified"`
	PhoneNumberVerified bool `bson:"isPhoneNumberVerified" json:"isPhoneNumberVerified"`
}

type Contact struct {
	OrderID     string `bson:"orderId" json:"orderId"`
	ContactID   string `bson:"contactId" json:"contactId"`
	ContactName string `bson:"contactName" json:"contactName"`
}

type User struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Email               string              `bson:"email" json:"email"`
	Password            string              `bson:"password" json:"-"`
	Name                string              `bson:"name" json:"name"`
	ProfilePicture      string              `bson:"profilePicture" json:"profilePicture"`
	Role                string              `bson:"role" json:"role"`
	UserStatus          string              `bson:"userStatus" json:"userStatus"`
	VerificationDetails VerificationDetails `bson:"verificationDetails" json:"verificationDetails"`
	Contacts            []Contact           `bson:"contacts" json:"contacts"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}
