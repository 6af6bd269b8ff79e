package contact

import (
	"fmt"
	"net/smtp"
	"strings"
	"testing"

	"facevoice-api/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&ContactMessage{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	return db
}

func stubMail(t *testing.T, fn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) {
	t.Helper()
	orig := sendMail
	sendMail = fn
	t.Cleanup(func() { sendMail = orig })
}

func TestSubmit_PersistsMessage(t *testing.T) {
	stubMail(t, func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return nil
	})

	svc := &ContactService{
		DB:  newTestDB(t),
		CFG: &config.Config{GmailUser: "svc@test.com", GmailPass: "pw"},
	}

	msg, err := svc.Submit(SubmitContactRequest{Name: "Mira", Email: "mira@test.com", Message: "hi"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if msg.ID == 0 {
		t.Fatalf("expected persisted ID")
	}

	var count int64
	if err := svc.DB.Model(&ContactMessage{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestSubmit_SendsNotification(t *testing.T) {
	var gotAddr, gotFrom string
	var gotBody []byte
	stubMail(t, func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotBody = addr, from, msg
		return nil
	})

	svc := &ContactService{
		DB:  newTestDB(t),
		CFG: &config.Config{GmailUser: "svc@test.com", GmailPass: "pw"},
	}

	if _, err := svc.Submit(SubmitContactRequest{Name: "Mira", Email: "mira@test.com", Message: "hello there"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gotAddr != "smtp.gmail.com:587" {
		t.Fatalf("unexpected smtp addr: %q", gotAddr)
	}
	if gotFrom != "svc@test.com" {
		t.Fatalf("unexpected from: %q", gotFrom)
	}
	if !strings.Contains(string(gotBody), "hello there") {
		t.Fatalf("body missing message: %s", gotBody)
	}
}

func TestSubmit_MailFailureDoesNotFailRequest(t *testing.T) {
	stubMail(t, func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return fmt.Errorf("smtp down")
	})

	svc := &ContactService{
		DB:  newTestDB(t),
		CFG: &config.Config{GmailUser: "svc@test.com", GmailPass: "pw"},
	}

	if _, err := svc.Submit(SubmitContactRequest{Name: "A", Email: "a@b.com", Message: "x"}); err != nil {
		t.Fatalf("expected nil err despite smtp failure, got: %v", err)
	}
}

func TestSubmit_NoMailCredentials_StillPersists(t *testing.T) {
	stubMail(t, func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		t.Fatal("sendMail called without credentials")
		return nil
	})

	svc := &ContactService{DB: newTestDB(t), CFG: &config.Config{}}

	msg, err := svc.Submit(SubmitContactRequest{Name: "A", Email: "a@b.com", Message: "x"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if msg.ID == 0 {
		t.Fatalf("expected persisted ID")
	}
}

func TestSubmit_BrokenDB(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	svc := &ContactService{DB: db, CFG: &config.Config{}}
	if _, err := svc.Submit(SubmitContactRequest{Name: "A", Email: "a@b.com", Message: "x"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
