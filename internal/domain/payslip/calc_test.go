package payslip

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   float64
	}{
		{"whole amount", 100000, 14, 14000},
		{"zero amount", 0, 30, 0},
		{"rounds half up", 10.01, 5, 0.50},
		{"fractional result", 1234.56, 30, 370.37},
		{"small rate", 100, 0.5, 0.50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percentage(tc.amount, tc.rate); got != tc.want {
				t.Fatalf("Percentage(%v, %v) = %v, want %v", tc.amount, tc.rate, got, tc.want)
			}
		})
	}
}

func TestComputeAmounts(t *testing.T) {
	b := ComputeAmounts(100000)

	if b.HouseAmount != 14000 {
		t.Fatalf("house = %v, want 14000", b.HouseAmount)
	}
	if b.TransportAmount != 14000 {
		t.Fatalf("transport = %v, want 14000", b.TransportAmount)
	}
	if b.GrossSalary != 128000 {
		t.Fatalf("gross = %v, want 128000", b.GrossSalary)
	}
	if b.EmployeeTax != 30000 {
		t.Fatalf("tax = %v, want 30000", b.EmployeeTax)
	}
	if b.Pension != 6000 {
		t.Fatalf("pension = %v, want 6000", b.Pension)
	}
	if b.MedicalInsurance != 5000 {
		t.Fatalf("medical = %v, want 5000", b.MedicalInsurance)
	}
	if b.Others != 5000 {
		t.Fatalf("others = %v, want 5000", b.Others)
	}
	if b.TotalDeductions != 46000 {
		t.Fatalf("total deductions = %v, want 46000", b.TotalDeductions)
	}
	if b.NetSalary != 82000 {
		t.Fatalf("net = %v, want 82000", b.NetSalary)
	}
}

func TestComputeAmountsIdentities(t *testing.T) {
	for _, base := range []float64{1, 999.99, 45000, 100000, 1234567.89} {
		b := ComputeAmounts(base)

		if b.GrossSalary != base+b.HouseAmount+b.TransportAmount {
			t.Fatalf("base %v: gross identity violated", base)
		}
		if b.NetSalary != b.GrossSalary-b.TotalDeductions {
			t.Fatalf("base %v: net identity violated", base)
		}
		if b.TotalDeductions != b.EmployeeTax+b.Pension+b.MedicalInsurance+b.Others {
			t.Fatalf("base %v: deduction sum violated", base)
		}
	}
}
