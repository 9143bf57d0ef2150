package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificationService_Send(t *testing.T) {
	mail := &fakeMailSender{}
	svc := NewCertificationService(mail, "http://localhost:8080")

	svc.Send("1", "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaab", "jeonggoo75@gmail.com")

	msgs := mail.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "jeonggoo75@gmail.com", msgs[0].To)
	assert.Equal(t, "Please certify your email address", msgs[0].Subject)
	assert.Equal(t,
		"Please click the following link to certify your email address: "+
			"http://localhost:8080/api/accounts/1/verify?certificationCode=aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaab",
		msgs[0].Body)
}
