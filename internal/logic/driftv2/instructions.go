package driftv2

import (
	"fmt"

	"drift-indexer-sol/internal/types"
)

// InitializeUserArgs initialize_user：创建子账户
type InitializeUserArgs struct {
	SubAccountID uint16
	NameBytes    [32]byte
}

// InitializeUserStatsArgs initialize_user_stats：创建用户统计账户，无参数
type InitializeUserStatsArgs struct{}

// InitializeReferrerNameArgs initialize_referrer_name：注册推荐人名称
type InitializeReferrerNameArgs struct {
	NameBytes [32]byte
}

// DepositArgs deposit：存入抵押品
type DepositArgs struct {
	MarketIndex uint16
	Amount      uint64
	ReduceOnly  bool
}

// WithdrawArgs withdraw：提取抵押品
type WithdrawArgs struct {
	MarketIndex uint16
	Amount      uint64
	ReduceOnly  bool
}

// TransferDepositArgs transfer_deposit：子账户间划转
type TransferDepositArgs struct {
	MarketIndex uint16
	Amount      uint64
}

// PlacePerpOrderArgs place_perp_order：永续下单
type PlacePerpOrderArgs struct {
	Params OrderParams
}

// CancelOrderArgs cancel_order：按订单号撤单
type CancelOrderArgs struct {
	OrderID *uint32 `bin:"optional"`
}

// CancelOrderByUserIdArgs cancel_order_by_user_id：按用户订单号撤单
type CancelOrderByUserIdArgs struct {
	UserOrderID uint8
}

// CancelOrdersArgs cancel_orders：批量撤单
type CancelOrdersArgs struct {
	MarketType  *MarketType        `bin:"optional"`
	MarketIndex *uint16            `bin:"optional"`
	Direction   *PositionDirection `bin:"optional"`
}

// CancelOrdersByIdsArgs cancel_orders_by_ids：按订单号列表撤单
type CancelOrdersByIdsArgs struct {
	OrderIDs []uint32
}

// ModifyOrderArgs modify_order：改单
type ModifyOrderArgs struct {
	OrderID           *uint32 `bin:"optional"`
	ModifyOrderParams ModifyOrderParams
}

// ModifyOrderByUserIdArgs modify_order_by_user_id：按用户订单号改单
type ModifyOrderByUserIdArgs struct {
	UserOrderID       uint8
	ModifyOrderParams ModifyOrderParams
}

// PlaceAndTakePerpOrderArgs place_and_take_perp_order：永续下单并吃单
type PlaceAndTakePerpOrderArgs struct {
	Params       OrderParams
	MakerOrderID *uint32 `bin:"optional"`
}

// PlaceAndMakePerpOrderArgs place_and_make_perp_order：永续下单并挂单成交
type PlaceAndMakePerpOrderArgs struct {
	Params       OrderParams
	TakerOrderID uint32
}

// PlaceSpotOrderArgs place_spot_order：现货下单
type PlaceSpotOrderArgs struct {
	Params OrderParams
}

// PlaceAndTakeSpotOrderArgs place_and_take_spot_order：现货下单并吃单
type PlaceAndTakeSpotOrderArgs struct {
	Params          OrderParams
	FulfillmentType *SpotFulfillmentType `bin:"optional"`
	MakerOrderID    *uint32              `bin:"optional"`
}

// PlaceAndMakeSpotOrderArgs place_and_make_spot_order：现货下单并挂单成交
type PlaceAndMakeSpotOrderArgs struct {
	Params          OrderParams
	TakerOrderID    uint32
	FulfillmentType *SpotFulfillmentType `bin:"optional"`
}

// PlaceOrdersArgs place_orders：批量下单
type PlaceOrdersArgs struct {
	Params []OrderParams
}

// BeginSwapArgs begin_swap：闪兑开始
type BeginSwapArgs struct {
	InMarketIndex  uint16
	OutMarketIndex uint16
	AmountIn       uint64
}

// EndSwapArgs end_swap：闪兑结束
type EndSwapArgs struct {
	InMarketIndex  uint16
	OutMarketIndex uint16
	LimitPrice     *uint64         `bin:"optional"`
	ReduceOnly     *SwapReduceOnly `bin:"optional"`
}

// AddPerpLpSharesArgs add_perp_lp_shares：增加 LP 份额
type AddPerpLpSharesArgs struct {
	NShares     uint64
	MarketIndex uint16
}

// RemovePerpLpSharesArgs remove_perp_lp_shares：移除 LP 份额
type RemovePerpLpSharesArgs struct {
	SharesToBurn uint64
	MarketIndex  uint16
}

// RemovePerpLpSharesInExpiringMarketArgs remove_perp_lp_shares_in_expiring_market：到期市场移除 LP 份额
type RemovePerpLpSharesInExpiringMarketArgs struct {
	SharesToBurn uint64
	MarketIndex  uint16
}

// UpdateUserNameArgs update_user_name：修改子账户名称
type UpdateUserNameArgs struct {
	SubAccountID uint16
	NameBytes    [32]byte
}

// UpdateUserCustomMarginRatioArgs update_user_custom_margin_ratio：修改自定义保证金率
type UpdateUserCustomMarginRatioArgs struct {
	SubAccountID uint16
	MarginRatio  uint32
}

// UpdateUserMarginTradingEnabledArgs update_user_margin_trading_enabled：开关杠杆交易
type UpdateUserMarginTradingEnabledArgs struct {
	SubAccountID         uint16
	MarginTradingEnabled bool
}

// UpdateUserDelegateArgs update_user_delegate：设置委托人
type UpdateUserDelegateArgs struct {
	SubAccountID uint16
	Delegate     types.Pubkey
}

// UpdateUserReduceOnlyArgs update_user_reduce_only：设置只减仓
type UpdateUserReduceOnlyArgs struct {
	SubAccountID uint16
	ReduceOnly   bool
}

// UpdateUserAdvancedLpArgs update_user_advanced_lp：设置高级 LP
type UpdateUserAdvancedLpArgs struct {
	SubAccountID uint16
	AdvancedLp   bool
}

// DeleteUserArgs delete_user：删除子账户，无参数
type DeleteUserArgs struct{}

// ReclaimRentArgs reclaim_rent：回收租金，无参数
type ReclaimRentArgs struct{}

// FillPerpOrderArgs fill_perp_order：撮合永续订单
type FillPerpOrderArgs struct {
	OrderID      *uint32 `bin:"optional"`
	MakerOrderID *uint32 `bin:"optional"`
}

// RevertFillArgs revert_fill：回滚撮合，无参数
type RevertFillArgs struct{}

// FillSpotOrderArgs fill_spot_order：撮合现货订单
type FillSpotOrderArgs struct {
	OrderID         *uint32              `bin:"optional"`
	FulfillmentType *SpotFulfillmentType `bin:"optional"`
	MakerOrderID    *uint32              `bin:"optional"`
}

// TriggerOrderArgs trigger_order：触发条件单
type TriggerOrderArgs struct {
	OrderID uint32
}

// ForceCancelOrdersArgs force_cancel_orders：强制撤单，无参数
type ForceCancelOrdersArgs struct{}

// UpdateUserIdleArgs update_user_idle：标记账户闲置，无参数
type UpdateUserIdleArgs struct{}

// UpdateUserOpenOrdersCountArgs update_user_open_orders_count：刷新挂单计数，无参数
type UpdateUserOpenOrdersCountArgs struct{}

// SettlePnlArgs settle_pnl：结算盈亏
type SettlePnlArgs struct {
	MarketIndex uint16
}

// SettleMultiplePnlsArgs settle_multiple_pnls：批量结算盈亏
type SettleMultiplePnlsArgs struct {
	MarketIndexes []uint16
	Mode          SettlePnlMode
}

// SettleFundingPaymentArgs settle_funding_payment：结算资金费，无参数
type SettleFundingPaymentArgs struct{}

// SettleLpArgs settle_lp：结算 LP
type SettleLpArgs struct {
	MarketIndex uint16
}

// SettleExpiredMarketArgs settle_expired_market：结算到期市场
type SettleExpiredMarketArgs struct {
	MarketIndex uint16
}

// LiquidatePerpArgs liquidate_perp：清算永续仓位
type LiquidatePerpArgs struct {
	MarketIndex                  uint16
	LiquidatorMaxBaseAssetAmount uint64
	LimitPrice                   *uint64 `bin:"optional"`
}

// LiquidateSpotArgs liquidate_spot：清算现货借贷
type LiquidateSpotArgs struct {
	AssetMarketIndex               uint16
	LiabilityMarketIndex           uint16
	LiquidatorMaxLiabilityTransfer Uint128
	LimitPrice                     *uint64 `bin:"optional"`
}

// LiquidateBorrowForPerpPnlArgs liquidate_borrow_for_perp_pnl：以永续盈利清算借贷
type LiquidateBorrowForPerpPnlArgs struct {
	PerpMarketIndex                uint16
	SpotMarketIndex                uint16
	LiquidatorMaxLiabilityTransfer Uint128
	LimitPrice                     *uint64 `bin:"optional"`
}

// LiquidatePerpPnlForDepositArgs liquidate_perp_pnl_for_deposit：以存款清算永续亏损
type LiquidatePerpPnlForDepositArgs struct {
	PerpMarketIndex          uint16
	SpotMarketIndex          uint16
	LiquidatorMaxPnlTransfer Uint128
	LimitPrice               *uint64 `bin:"optional"`
}

// ResolvePerpPnlDeficitArgs resolve_perp_pnl_deficit：处理永续盈亏缺口
type ResolvePerpPnlDeficitArgs struct {
	SpotMarketIndex uint16
	PerpMarketIndex uint16
}

// ResolvePerpBankruptcyArgs resolve_perp_bankruptcy：处理永续破产
type ResolvePerpBankruptcyArgs struct {
	QuoteSpotMarketIndex uint16
	MarketIndex          uint16
}

// ResolveSpotBankruptcyArgs resolve_spot_bankruptcy：处理现货破产
type ResolveSpotBankruptcyArgs struct {
	MarketIndex uint16
}

// SettleRevenueToInsuranceFundArgs settle_revenue_to_insurance_fund：收入划入保险基金
type SettleRevenueToInsuranceFundArgs struct {
	SpotMarketIndex uint16
}

// UpdateFundingRateArgs update_funding_rate：更新资金费率
type UpdateFundingRateArgs struct {
	MarketIndex uint16
}

// UpdatePrelaunchOracleArgs update_prelaunch_oracle：更新预上线预言机，无参数
type UpdatePrelaunchOracleArgs struct{}

// UpdatePerpBidAskTwapArgs update_perp_bid_ask_twap：更新买卖 TWAP，无参数
type UpdatePerpBidAskTwapArgs struct{}

// UpdateSpotMarketCumulativeInterestArgs update_spot_market_cumulative_interest：更新累计利息，无参数
type UpdateSpotMarketCumulativeInterestArgs struct{}

// UpdateAmmsArgs update_amms：批量更新 AMM
type UpdateAmmsArgs struct {
	MarketIndexes [5]uint16
}

// UpdateUserQuoteAssetInsuranceStakeArgs update_user_quote_asset_insurance_stake：同步保险质押，无参数
type UpdateUserQuoteAssetInsuranceStakeArgs struct{}

// InitializeInsuranceFundStakeArgs initialize_insurance_fund_stake：创建保险基金质押账户
type InitializeInsuranceFundStakeArgs struct {
	MarketIndex uint16
}

// AddInsuranceFundStakeArgs add_insurance_fund_stake：追加保险基金质押
type AddInsuranceFundStakeArgs struct {
	MarketIndex uint16
	Amount      uint64
}

// RequestRemoveInsuranceFundStakeArgs request_remove_insurance_fund_stake：申请赎回保险质押
type RequestRemoveInsuranceFundStakeArgs struct {
	MarketIndex uint16
	Amount      uint64
}

// CancelRequestRemoveInsuranceFundStakeArgs cancel_request_remove_insurance_fund_stake：取消赎回申请
type CancelRequestRemoveInsuranceFundStakeArgs struct {
	MarketIndex uint16
}

// RemoveInsuranceFundStakeArgs remove_insurance_fund_stake：赎回保险质押
type RemoveInsuranceFundStakeArgs struct {
	MarketIndex uint16
}

// DepositIntoSpotMarketRevenuePoolArgs deposit_into_spot_market_revenue_pool：注入现货收入池
type DepositIntoSpotMarketRevenuePoolArgs struct {
	Amount uint64
}

// 每个变体的 Discriminator / Name，由 catalog 统一注册

func (*InitializeUserArgs) Discriminator() Discriminator { return InitializeUser }
func (*InitializeUserStatsArgs) Discriminator() Discriminator { return InitializeUserStats }
func (*InitializeReferrerNameArgs) Discriminator() Discriminator { return InitializeReferrerName }
func (*DepositArgs) Discriminator() Discriminator { return Deposit }
func (*WithdrawArgs) Discriminator() Discriminator { return Withdraw }
func (*TransferDepositArgs) Discriminator() Discriminator { return TransferDeposit }
func (*PlacePerpOrderArgs) Discriminator() Discriminator { return PlacePerpOrder }
func (*CancelOrderArgs) Discriminator() Discriminator { return CancelOrder }
func (*CancelOrderByUserIdArgs) Discriminator() Discriminator { return CancelOrderByUserId }
func (*CancelOrdersArgs) Discriminator() Discriminator { return CancelOrders }
func (*CancelOrdersByIdsArgs) Discriminator() Discriminator { return CancelOrdersByIds }
func (*ModifyOrderArgs) Discriminator() Discriminator { return ModifyOrder }
func (*ModifyOrderByUserIdArgs) Discriminator() Discriminator { return ModifyOrderByUserId }
func (*PlaceAndTakePerpOrderArgs) Discriminator() Discriminator { return PlaceAndTakePerpOrder }
func (*PlaceAndMakePerpOrderArgs) Discriminator() Discriminator { return PlaceAndMakePerpOrder }
func (*PlaceSpotOrderArgs) Discriminator() Discriminator { return PlaceSpotOrder }
func (*PlaceAndTakeSpotOrderArgs) Discriminator() Discriminator { return PlaceAndTakeSpotOrder }
func (*PlaceAndMakeSpotOrderArgs) Discriminator() Discriminator { return PlaceAndMakeSpotOrder }
func (*PlaceOrdersArgs) Discriminator() Discriminator { return PlaceOrders }
func (*BeginSwapArgs) Discriminator() Discriminator { return BeginSwap }
func (*EndSwapArgs) Discriminator() Discriminator { return EndSwap }
func (*AddPerpLpSharesArgs) Discriminator() Discriminator { return AddPerpLpShares }
func (*RemovePerpLpSharesArgs) Discriminator() Discriminator { return RemovePerpLpShares }
func (*RemovePerpLpSharesInExpiringMarketArgs) Discriminator() Discriminator { return RemovePerpLpSharesInExpiringMarket }
func (*UpdateUserNameArgs) Discriminator() Discriminator { return UpdateUserName }
func (*UpdateUserCustomMarginRatioArgs) Discriminator() Discriminator { return UpdateUserCustomMarginRatio }
func (*UpdateUserMarginTradingEnabledArgs) Discriminator() Discriminator { return UpdateUserMarginTradingEnabled }
func (*UpdateUserDelegateArgs) Discriminator() Discriminator { return UpdateUserDelegate }
func (*UpdateUserReduceOnlyArgs) Discriminator() Discriminator { return UpdateUserReduceOnly }
func (*UpdateUserAdvancedLpArgs) Discriminator() Discriminator { return UpdateUserAdvancedLp }
func (*DeleteUserArgs) Discriminator() Discriminator { return DeleteUser }
func (*ReclaimRentArgs) Discriminator() Discriminator { return ReclaimRent }
func (*FillPerpOrderArgs) Discriminator() Discriminator { return FillPerpOrder }
func (*RevertFillArgs) Discriminator() Discriminator { return RevertFill }
func (*FillSpotOrderArgs) Discriminator() Discriminator { return FillSpotOrder }
func (*TriggerOrderArgs) Discriminator() Discriminator { return TriggerOrder }
func (*ForceCancelOrdersArgs) Discriminator() Discriminator { return ForceCancelOrders }
func (*UpdateUserIdleArgs) Discriminator() Discriminator { return UpdateUserIdle }
func (*UpdateUserOpenOrdersCountArgs) Discriminator() Discriminator { return UpdateUserOpenOrdersCount }
func (*SettlePnlArgs) Discriminator() Discriminator { return SettlePnl }
func (*SettleMultiplePnlsArgs) Discriminator() Discriminator { return SettleMultiplePnls }
func (*SettleFundingPaymentArgs) Discriminator() Discriminator { return SettleFundingPayment }
func (*SettleLpArgs) Discriminator() Discriminator { return SettleLp }
func (*SettleExpiredMarketArgs) Discriminator() Discriminator { return SettleExpiredMarket }
func (*LiquidatePerpArgs) Discriminator() Discriminator { return LiquidatePerp }
func (*LiquidateSpotArgs) Discriminator() Discriminator { return LiquidateSpot }
func (*LiquidateBorrowForPerpPnlArgs) Discriminator() Discriminator { return LiquidateBorrowForPerpPnl }
func (*LiquidatePerpPnlForDepositArgs) Discriminator() Discriminator { return LiquidatePerpPnlForDeposit }
func (*ResolvePerpPnlDeficitArgs) Discriminator() Discriminator { return ResolvePerpPnlDeficit }
func (*ResolvePerpBankruptcyArgs) Discriminator() Discriminator { return ResolvePerpBankruptcy }
func (*ResolveSpotBankruptcyArgs) Discriminator() Discriminator { return ResolveSpotBankruptcy }
func (*SettleRevenueToInsuranceFundArgs) Discriminator() Discriminator { return SettleRevenueToInsuranceFund }
func (*UpdateFundingRateArgs) Discriminator() Discriminator { return UpdateFundingRate }
func (*UpdatePrelaunchOracleArgs) Discriminator() Discriminator { return UpdatePrelaunchOracle }
func (*UpdatePerpBidAskTwapArgs) Discriminator() Discriminator { return UpdatePerpBidAskTwap }
func (*UpdateSpotMarketCumulativeInterestArgs) Discriminator() Discriminator { return UpdateSpotMarketCumulativeInterest }
func (*UpdateAmmsArgs) Discriminator() Discriminator { return UpdateAmms }
func (*UpdateUserQuoteAssetInsuranceStakeArgs) Discriminator() Discriminator { return UpdateUserQuoteAssetInsuranceStake }
func (*InitializeInsuranceFundStakeArgs) Discriminator() Discriminator { return InitializeInsuranceFundStake }
func (*AddInsuranceFundStakeArgs) Discriminator() Discriminator { return AddInsuranceFundStake }
func (*RequestRemoveInsuranceFundStakeArgs) Discriminator() Discriminator { return RequestRemoveInsuranceFundStake }
func (*CancelRequestRemoveInsuranceFundStakeArgs) Discriminator() Discriminator { return CancelRequestRemoveInsuranceFundStake }
func (*RemoveInsuranceFundStakeArgs) Discriminator() Discriminator { return RemoveInsuranceFundStake }
func (*DepositIntoSpotMarketRevenuePoolArgs) Discriminator() Discriminator { return DepositIntoSpotMarketRevenuePool }

func (*InitializeUserArgs) Name() string { return InitializeUser.String() }
func (*InitializeUserStatsArgs) Name() string { return InitializeUserStats.String() }
func (*InitializeReferrerNameArgs) Name() string { return InitializeReferrerName.String() }
func (*DepositArgs) Name() string { return Deposit.String() }
func (*WithdrawArgs) Name() string { return Withdraw.String() }
func (*TransferDepositArgs) Name() string { return TransferDeposit.String() }
func (*PlacePerpOrderArgs) Name() string { return PlacePerpOrder.String() }
func (*CancelOrderArgs) Name() string { return CancelOrder.String() }
func (*CancelOrderByUserIdArgs) Name() string { return CancelOrderByUserId.String() }
func (*CancelOrdersArgs) Name() string { return CancelOrders.String() }
func (*CancelOrdersByIdsArgs) Name() string { return CancelOrdersByIds.String() }
func (*ModifyOrderArgs) Name() string { return ModifyOrder.String() }
func (*ModifyOrderByUserIdArgs) Name() string { return ModifyOrderByUserId.String() }
func (*PlaceAndTakePerpOrderArgs) Name() string { return PlaceAndTakePerpOrder.String() }
func (*PlaceAndMakePerpOrderArgs) Name() string { return PlaceAndMakePerpOrder.String() }
func (*PlaceSpotOrderArgs) Name() string { return PlaceSpotOrder.String() }
func (*PlaceAndTakeSpotOrderArgs) Name() string { return PlaceAndTakeSpotOrder.String() }
func (*PlaceAndMakeSpotOrderArgs) Name() string { return PlaceAndMakeSpotOrder.String() }
func (*PlaceOrdersArgs) Name() string { return PlaceOrders.String() }
func (*BeginSwapArgs) Name() string { return BeginSwap.String() }
func (*EndSwapArgs) Name() string { return EndSwap.String() }
func (*AddPerpLpSharesArgs) Name() string { return AddPerpLpShares.String() }
func (*RemovePerpLpSharesArgs) Name() string { return RemovePerpLpShares.String() }
func (*RemovePerpLpSharesInExpiringMarketArgs) Name() string { return RemovePerpLpSharesInExpiringMarket.String() }
func (*UpdateUserNameArgs) Name() string { return UpdateUserName.String() }
func (*UpdateUserCustomMarginRatioArgs) Name() string { return UpdateUserCustomMarginRatio.String() }
func (*UpdateUserMarginTradingEnabledArgs) Name() string { return UpdateUserMarginTradingEnabled.String() }
func (*UpdateUserDelegateArgs) Name() string { return UpdateUserDelegate.String() }
func (*UpdateUserReduceOnlyArgs) Name() string { return UpdateUserReduceOnly.String() }
func (*UpdateUserAdvancedLpArgs) Name() string { return UpdateUserAdvancedLp.String() }
func (*DeleteUserArgs) Name() string { return DeleteUser.String() }
func (*ReclaimRentArgs) Name() string { return ReclaimRent.String() }
func (*FillPerpOrderArgs) Name() string { return FillPerpOrder.String() }
func (*RevertFillArgs) Name() string { return RevertFill.String() }
func (*FillSpotOrderArgs) Name() string { return FillSpotOrder.String() }
func (*TriggerOrderArgs) Name() string { return TriggerOrder.String() }
func (*ForceCancelOrdersArgs) Name() string { return ForceCancelOrders.String() }
func (*UpdateUserIdleArgs) Name() string { return UpdateUserIdle.String() }
func (*UpdateUserOpenOrdersCountArgs) Name() string { return UpdateUserOpenOrdersCount.String() }
func (*SettlePnlArgs) Name() string { return SettlePnl.String() }
func (*SettleMultiplePnlsArgs) Name() string { return SettleMultiplePnls.String() }
func (*SettleFundingPaymentArgs) Name() string { return SettleFundingPayment.String() }
func (*SettleLpArgs) Name() string { return SettleLp.String() }
func (*SettleExpiredMarketArgs) Name() string { return SettleExpiredMarket.String() }
func (*LiquidatePerpArgs) Name() string { return LiquidatePerp.String() }
func (*LiquidateSpotArgs) Name() string { return LiquidateSpot.String() }
func (*LiquidateBorrowForPerpPnlArgs) Name() string { return LiquidateBorrowForPerpPnl.String() }
func (*LiquidatePerpPnlForDepositArgs) Name() string { return LiquidatePerpPnlForDeposit.String() }
func (*ResolvePerpPnlDeficitArgs) Name() string { return ResolvePerpPnlDeficit.String() }
func (*ResolvePerpBankruptcyArgs) Name() string { return ResolvePerpBankruptcy.String() }
func (*ResolveSpotBankruptcyArgs) Name() string { return ResolveSpotBankruptcy.String() }
func (*SettleRevenueToInsuranceFundArgs) Name() string { return SettleRevenueToInsuranceFund.String() }
func (*UpdateFundingRateArgs) Name() string { return UpdateFundingRate.String() }
func (*UpdatePrelaunchOracleArgs) Name() string { return UpdatePrelaunchOracle.String() }
func (*UpdatePerpBidAskTwapArgs) Name() string { return UpdatePerpBidAskTwap.String() }
func (*UpdateSpotMarketCumulativeInterestArgs) Name() string { return UpdateSpotMarketCumulativeInterest.String() }
func (*UpdateAmmsArgs) Name() string { return UpdateAmms.String() }
func (*UpdateUserQuoteAssetInsuranceStakeArgs) Name() string { return UpdateUserQuoteAssetInsuranceStake.String() }
func (*InitializeInsuranceFundStakeArgs) Name() string { return InitializeInsuranceFundStake.String() }
func (*AddInsuranceFundStakeArgs) Name() string { return AddInsuranceFundStake.String() }
func (*RequestRemoveInsuranceFundStakeArgs) Name() string { return RequestRemoveInsuranceFundStake.String() }
func (*CancelRequestRemoveInsuranceFundStakeArgs) Name() string { return CancelRequestRemoveInsuranceFundStake.String() }
func (*RemoveInsuranceFundStakeArgs) Name() string { return RemoveInsuranceFundStake.String() }
func (*DepositIntoSpotMarketRevenuePoolArgs) Name() string { return DepositIntoSpotMarketRevenuePool.String() }

func (p *PlacePerpOrderArgs) validate() error {
	return p.Params.validate()
}

func (p *CancelOrdersArgs) validate() error {
	if p.MarketType != nil {
		if err := checkEnum("market_type", uint8(*p.MarketType), uint8(marketTypeCount)); err != nil {
			return err
		}
	}
	if p.Direction != nil {
		if err := checkEnum("direction", uint8(*p.Direction), uint8(positionDirectionCount)); err != nil {
			return err
		}
	}
	return nil
}

func (p *ModifyOrderArgs) validate() error {
	return p.ModifyOrderParams.validate()
}

func (p *ModifyOrderByUserIdArgs) validate() error {
	return p.ModifyOrderParams.validate()
}

func (p *PlaceAndTakePerpOrderArgs) validate() error {
	return p.Params.validate()
}

func (p *PlaceAndMakePerpOrderArgs) validate() error {
	return p.Params.validate()
}

func (p *PlaceSpotOrderArgs) validate() error {
	return p.Params.validate()
}

func (p *PlaceAndTakeSpotOrderArgs) validate() error {
	if err := p.Params.validate(); err != nil {
		return err
	}
	if p.FulfillmentType != nil {
		if err := checkEnum("fulfillment_type", uint8(*p.FulfillmentType), uint8(spotFulfillmentTypeCount)); err != nil {
			return err
		}
	}
	return nil
}

func (p *PlaceAndMakeSpotOrderArgs) validate() error {
	if err := p.Params.validate(); err != nil {
		return err
	}
	if p.FulfillmentType != nil {
		if err := checkEnum("fulfillment_type", uint8(*p.FulfillmentType), uint8(spotFulfillmentTypeCount)); err != nil {
			return err
		}
	}
	return nil
}

func (p *PlaceOrdersArgs) validate() error {
	for i := range p.Params {
		if err := p.Params[i].validate(); err != nil {
			return fmt.Errorf("params[%d]: %w", i, err)
		}
	}
	return nil
}

func (p *EndSwapArgs) validate() error {
	if p.ReduceOnly != nil {
		if err := checkEnum("reduce_only", uint8(*p.ReduceOnly), uint8(swapReduceOnlyCount)); err != nil {
			return err
		}
	}
	return nil
}

func (p *FillSpotOrderArgs) validate() error {
	if p.FulfillmentType != nil {
		if err := checkEnum("fulfillment_type", uint8(*p.FulfillmentType), uint8(spotFulfillmentTypeCount)); err != nil {
			return err
		}
	}
	return nil
}

func (p *SettleMultiplePnlsArgs) validate() error {
	return checkEnum("mode", uint8(p.Mode), uint8(settlePnlModeCount))
}
