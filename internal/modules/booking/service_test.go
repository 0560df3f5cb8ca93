// README: Tests for the booking handler.
package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

type fakeVendor struct {
	result *sftech.PNRResult
	err    error
	calls  int
}

func (f *fakeVendor) RetrievePNR(_ context.Context, _ string) (*sftech.PNRResult, error) {
	f.calls++
	return f.result, f.err
}

func stateWith(msg string) *conversation.State {
	s := conversation.NewState("s1", "")
	s.AppendUser(msg)
	return s
}

func TestHandle_LookupSuccess(t *testing.T) {
	vendor := &fakeVendor{result: &sftech.PNRResult{
		Success:     true,
		BookingCode: "ABC123",
		Status:      "CONFIRMED",
		Passengers:  []sftech.Passenger{{Title: "MR", FirstName: "AN", LastName: "NGUYEN"}},
		TotalPrice:  1_250_000,
		Currency:    "VND",
	}}
	svc := NewService(capability.Load(), vendor)

	reply, err := svc.Handle(context.Background(), stateWith("tra cứu booking ABC123"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.calls != 1 {
		t.Errorf("expected 1 vendor call, got %d", vendor.calls)
	}
	if !strings.Contains(reply, "ABC123") || !strings.Contains(reply, "Đã xác nhận") {
		t.Errorf("expected booking summary, got %q", reply)
	}
	if !strings.Contains(reply, "1.250.000 VND") {
		t.Errorf("expected formatted price, got %q", reply)
	}
}

func TestHandle_LookupNotFound(t *testing.T) {
	vendor := &fakeVendor{result: &sftech.PNRResult{Success: false, Message: "not found"}}
	svc := NewService(capability.Load(), vendor)

	reply, err := svc.Handle(context.Background(), stateWith("kiểm tra booking XYZ789"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "Không tìm thấy") {
		t.Errorf("expected not-found reply, got %q", reply)
	}
}

func TestHandle_MissingCodePrompts(t *testing.T) {
	vendor := &fakeVendor{}
	svc := NewService(capability.Load(), vendor)

	reply, err := svc.Handle(context.Background(), stateWith("tra cứu booking của tôi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.calls != 0 {
		t.Errorf("expected no vendor calls, got %d", vendor.calls)
	}
	if !strings.Contains(reply, "mã booking") {
		t.Errorf("expected prompt for code, got %q", reply)
	}
}

func TestHandle_CreateIsGated(t *testing.T) {
	vendor := &fakeVendor{}
	svc := NewService(capability.Load(), vendor)

	reply, err := svc.Handle(context.Background(), stateWith("đặt chỗ giúp tôi chuyến SGN-HAN"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.calls != 0 {
		t.Errorf("expected no vendor calls, got %d", vendor.calls)
	}
	if !strings.Contains(reply, "chưa được hỗ trợ") {
		t.Errorf("expected not-supported reply, got %q", reply)
	}
}
