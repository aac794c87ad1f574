package billing

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/app/services/emr/emrhttp"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/emr_dto"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	billingEmrClientInstance contracts.BillingEmrClient
	onceBillingEmrClient     sync.Once
)

type billingEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewBillingEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.BillingEmrClient {
	onceBillingEmrClient.Do(func() {
		client := &billingEmrClient{
			BaseUrl: baseUrl,
			Emr:     emrClient,
			Log:     logger,
		}
		billingEmrClientInstance = client
	})
	return billingEmrClientInstance
}

func (c *billingEmrClient) ListBillableServices(ctx context.Context) ([]emr_dto.BillableService, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("billingEmrClient.ListBillableServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	serviceList := new(emr_dto.BillableServiceList)
	requestUrl := c.BaseUrl + constvars.EmrResourceBillableService
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourceBillableService, serviceList); err != nil {
		return nil, err
	}

	return serviceList.Results, nil
}

func (c *billingEmrClient) CreateBill(ctx context.Context, request *emr_dto.CreateBillRequest) (*emr_dto.PatientBill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("billingEmrClient.CreateBill called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.Patient),
		zap.Int("line_item_count", len(request.LineItems)),
	)

	bill := new(emr_dto.PatientBill)
	requestUrl := c.BaseUrl + constvars.EmrResourcePatientBill
	if err := c.Emr.Post(ctx, requestUrl, constvars.EmrResourcePatientBill, request, bill); err != nil {
		return nil, err
	}

	c.Log.Info("billingEmrClient.CreateBill succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("bill_id", bill.UUID),
	)
	return bill, nil
}

func (c *billingEmrClient) FindBillsByPatient(ctx context.Context, patientUUID string) ([]emr_dto.PatientBill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("billingEmrClient.FindBillsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientUUID),
	)

	params := url.Values{}
	params.Set("patient", patientUUID)
	params.Set("v", "full")

	billList := new(emr_dto.PatientBillList)
	requestUrl := fmt.Sprintf("%s%s?%s", c.BaseUrl, constvars.EmrResourcePatientBill, params.Encode())
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourcePatientBill, billList); err != nil {
		return nil, err
	}

	return billList.Results, nil
}
