package psswd

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type PasswordHashTestSuite struct {
	suite.Suite
	hasher PasswordHash
}

func TestPasswordHashSuite(t *testing.T) {
	suite.Run(t, new(PasswordHashTestSuite))
}

func (s *PasswordHashTestSuite) SetupTest() {
	s.hasher = PasswordHash(bcrypt.MinCost)
}

func (s *PasswordHashTestSuite) TestHashAndCompare() {
	password := gofakeit.Password(true, true, true, false, false, 12)

	hash, err := s.hasher.HashPassword(password)
	s.Require().NoError(err)
	s.NotEqual(password, hash)

	s.True(s.hasher.ComparePassword(password, hash))
	s.False(s.hasher.ComparePassword(password+"x", hash))
	s.False(s.hasher.ComparePassword(password, "not a bcrypt hash"))
}

func (s *PasswordHashTestSuite) TestSalted() {
	first, err := s.hasher.HashPassword("123456")
	s.Require().NoError(err)
	second, err := s.hasher.HashPassword("123456")
	s.Require().NoError(err)

	// одинаковые пароли дают разные хеши
	s.NotEqual(first, second)
}
