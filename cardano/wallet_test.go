package cardano

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dan13ram/pos-minter/app"
	appMocks "github.com/dan13ram/pos-minter/app/mocks"
	"github.com/dan13ram/pos-minter/cardano/client"
	clientMocks "github.com/dan13ram/pos-minter/cardano/client/mocks"
	"github.com/dan13ram/pos-minter/cardano/util"
)

func TestEnsureCollateral(t *testing.T) {
	app.DB = nil

	t.Run("Existing Collateral", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)
		collateral := lovelaceUtxo(wallet.Address(), testCollateralHash, 0, "5000000")

		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{
			lovelaceUtxo(wallet.Address(), testFundingHash, 0, "5000001"),
			collateral,
		}, nil).Once()

		utxo, err := wallet.EnsureCollateral(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, collateral.Input(), utxo.Input())
	})

	t.Run("Creates Collateral", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)
		funding := lovelaceUtxo(wallet.Address(), testFundingHash, 0, "100000000")
		collateral := lovelaceUtxo(wallet.Address(), testCollateralHash, 0, "5000000")

		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{funding}, nil).Times(2)
		indexer.EXPECT().GetProtocolParameters(mock.Anything).Return(testProtocolParameters(), nil)
		indexer.EXPECT().GetLatestBlock(mock.Anything).Return(&client.Block{Height: 100, Slot: 5000}, nil)

		var submitted []byte
		indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, tx []byte) { submitted = tx }).
			Return(testCollateralHash, nil).Once()
		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{collateral}, nil).Once()

		utxo, err := wallet.EnsureCollateral(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, collateral.Input(), utxo.Input())

		assert.NoError(t, util.VerifyVKeyWitnesses(submitted))
		witnesses, err := util.VKeyWitnesses(submitted)
		assert.NoError(t, err)
		assert.Len(t, witnesses, 1)
	})

	t.Run("Never Visible", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)
		funding := lovelaceUtxo(wallet.Address(), testFundingHash, 0, "100000000")

		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{funding}, nil)
		indexer.EXPECT().GetProtocolParameters(mock.Anything).Return(testProtocolParameters(), nil)
		indexer.EXPECT().GetLatestBlock(mock.Anything).Return(&client.Block{Height: 100, Slot: 5000}, nil)
		indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).Return(testCollateralHash, nil).Once()

		_, err := wallet.EnsureCollateral(context.Background())
		assert.ErrorIs(t, err, ErrCollateralUnavailable)
		indexer.AssertNumberOfCalls(t, "GetAddressUtxos", 2+wallet.collateralAttempts)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)

		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).
			Return([]client.Utxo{lovelaceUtxo(wallet.Address(), testFundingHash, 0, "6000000")}, nil)
		indexer.EXPECT().GetProtocolParameters(mock.Anything).Return(testProtocolParameters(), nil)
		indexer.EXPECT().GetLatestBlock(mock.Anything).Return(&client.Block{Height: 100, Slot: 5000}, nil)

		_, err := wallet.EnsureCollateral(context.Background())
		assert.ErrorIs(t, err, ErrCollateralUnavailable)
		assert.ErrorContains(t, err, "insufficient wallet funds")
	})

	t.Run("Submit Rejected", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)

		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).
			Return([]client.Utxo{lovelaceUtxo(wallet.Address(), testFundingHash, 0, "100000000")}, nil)
		indexer.EXPECT().GetProtocolParameters(mock.Anything).Return(testProtocolParameters(), nil)
		indexer.EXPECT().GetLatestBlock(mock.Anything).Return(&client.Block{Height: 100, Slot: 5000}, nil)
		indexer.EXPECT().SubmitTx(mock.Anything, mock.Anything).Return("", errors.New("bad inputs"))

		_, err := wallet.EnsureCollateral(context.Background())
		assert.ErrorIs(t, err, ErrCollateralUnavailable)
	})

	t.Run("Indexer Error", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)

		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return(nil, errors.New("timeout"))

		_, err := wallet.EnsureCollateral(context.Background())
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
	})
}

func TestEnsureCollateralWithLock(t *testing.T) {
	mockDB := appMocks.NewMockDatabase(t)
	app.DB = mockDB
	defer func() { app.DB = nil }()

	t.Run("Locked By Another Instance", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)
		collateral := lovelaceUtxo(wallet.Address(), testCollateralHash, 0, "5000000")

		mockDB.EXPECT().XLock("collateral:"+wallet.Address()).Return("", app.ErrAlreadyLocked).Once()
		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{}, nil).Once()
		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{collateral}, nil).Once()

		utxo, err := wallet.EnsureCollateral(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, collateral.Input(), utxo.Input())
	})

	t.Run("Created Under Lock", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)
		collateral := lovelaceUtxo(wallet.Address(), testCollateralHash, 0, "5000000")

		mockDB.EXPECT().XLock("collateral:"+wallet.Address()).Return("lock-id", nil).Once()
		mockDB.EXPECT().Unlock("lock-id").Return(nil).Once()
		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{}, nil).Once()
		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{collateral}, nil).Once()

		utxo, err := wallet.EnsureCollateral(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, collateral.Input(), utxo.Input())
	})

	t.Run("Lock Error", func(t *testing.T) {
		indexer := clientMocks.NewMockIndexerClient(t)
		wallet := testWallet(t, indexer)

		mockDB.EXPECT().XLock("collateral:"+wallet.Address()).Return("", errors.New("connection reset")).Once()
		indexer.EXPECT().GetAddressUtxos(mock.Anything, wallet.Address()).Return([]client.Utxo{}, nil).Once()

		_, err := wallet.EnsureCollateral(context.Background())
		assert.ErrorIs(t, err, ErrCollateralUnavailable)
	})
}

func TestSelectLovelace(t *testing.T) {
	address := "addr_test1"
	tokenUtxo := lovelaceUtxo(address, testFundingHash, 3, "50000000")
	tokenUtxo.Amount = append(tokenUtxo.Amount, util.Amount{Unit: testOracleUnit, Quantity: "1"})
	utxos := []client.Utxo{
		lovelaceUtxo(address, testFundingHash, 0, "1000000"),
		lovelaceUtxo(address, testFundingHash, 1, "3000000"),
		lovelaceUtxo(address, testFundingHash, 2, "2000000"),
		tokenUtxo,
	}

	selected, total, err := selectLovelace(utxos, 4_000_000, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint64(5_000_000), total)
	assert.Len(t, selected, 2)
	assert.Equal(t, uint64(1), selected[0].OutputIndex)
	assert.Equal(t, uint64(2), selected[1].OutputIndex)

	skipLargest := func(utxo client.Utxo) bool { return utxo.OutputIndex == 1 }
	selected, total, err = selectLovelace(utxos, 3_000_000, skipLargest)
	assert.NoError(t, err)
	assert.Equal(t, uint64(3_000_000), total)
	assert.Len(t, selected, 2)

	_, _, err = selectLovelace(utxos, 7_000_000, nil)
	assert.ErrorContains(t, err, "insufficient wallet funds")
}

func TestTxChange(t *testing.T) {
	assert.Equal(t, uint64(3), TxChange(10, 7))
	assert.Equal(t, uint64(0), TxChange(7, 10))
}
