package signal

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	ObserveDelivery(signal string, delivered bool)
}
