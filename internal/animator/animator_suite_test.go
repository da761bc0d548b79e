package animator_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAnimator(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Animator Suite")
}
