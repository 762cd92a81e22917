package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/louisbranch/fairdice/internal/platform/i18n/catalog"
)

func TestEveryCodeHasMessages(t *testing.T) {
	bundle := catalog.Default()
	for _, locale := range bundle.Locales() {
		messages := bundle.NamespaceMessages(locale, "errors")
		for _, code := range Codes() {
			if _, ok := messages[string(code)]; !ok {
				t.Errorf("locale %s has no message for %s", locale, code)
			}
		}
	}
}

func TestCodeKinds(t *testing.T) {
	tcs := []struct {
		code Code
		want Kind
	}{
		{CodeDieInvalidFaceCount, KindValidation},
		{CodeDieNonIntegerFace, KindValidation},
		{CodeRandomInvalidRange, KindValidation},
		{CodeExchangeAlreadyCommitted, KindProtocolState},
		{CodeExchangeNotCommitted, KindProtocolState},
		{CodeExchangeAlreadyRevealed, KindProtocolState},
		{CodeExchangeChoiceOutOfRange, KindRange},
		{CodeDieIndexOutOfRange, KindRange},
		{CodeRandomEntropy, KindInternal},
		{CodeUnknown, KindInternal},
	}
	for _, tc := range tcs {
		if got := tc.code.Kind(); got != tc.want {
			t.Errorf("%s.Kind() = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeExchangeNotCommitted, "not committed")
	wrapped := fmt.Errorf("reveal: %w", WithMetadata(CodeExchangeNotCommitted, "other text", nil))
	if !stderrors.Is(wrapped, sentinel) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(wrapped, New(CodeExchangeAlreadyRevealed, "x")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeExchangeChoiceOutOfRange, "bad choice"))
	if !IsKind(err, KindRange) {
		t.Fatalf("KindOf = %v, want range", KindOf(err))
	}
	if KindOf(stderrors.New("plain")) != KindInternal {
		t.Fatal("expected plain errors to be internal")
	}
	if IsKind(nil, KindInternal) {
		t.Fatal("expected nil error to have no kind")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeRandomEntropy, "read entropy", stderrors.New("device gone"))
	if err.Error() != "read entropy: device gone" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrors.Is(err, err.Cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestLocalize(t *testing.T) {
	inner := WithMetadata(CodeDieNonIntegerFace, "non-integer", map[string]string{"Face": "2.5"})
	outer := WrapWithMetadata(CodeDiceInvalidAtPosition, "invalid die", map[string]string{"Position": "2"}, inner)

	got := Localize(outer, "en-US")
	want := "Invalid dice configuration at position 2: All dice faces must be integers, got 2.5"
	if got != want {
		t.Fatalf("Localize = %q, want %q", got, want)
	}

	got = Localize(outer, "pt-BR")
	want = "Configuração de dado inválida na posição 2: Todas as faces do dado devem ser inteiras, recebeu 2.5"
	if got != want {
		t.Fatalf("Localize pt-BR = %q, want %q", got, want)
	}

	if Localize(stderrors.New("plain"), "en-US") != "plain" {
		t.Fatal("expected plain errors to use Error()")
	}
	if Localize(nil, "en-US") != "" {
		t.Fatal("expected empty message for nil error")
	}
}
