// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package restype

import "github.com/BrunoReboul/autoalarm/utilities/alarm"

// Query templates read the metrics exported to Prometheus by the CloudWatch exporter
var ec2Configs = []alarm.MetricAlarmConfig{
	{
		TagKey:         "cpu",
		MetricName:     "CPUUtilization",
		Namespace:      namespaceEC2,
		DefaultCreate:  true,
		DefaultOptions: "95/98/300/2/Maximum",
		PromQL:         `max_over_time(aws_ec2_cpuutilization_maximum{dimension_InstanceId="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "cpu-anomaly",
		MetricName:     "CPUUtilization",
		Namespace:      namespaceEC2,
		IsAnomaly:      true,
		DefaultOptions: "Average/300/2",
	},
	{
		TagKey:         "memory",
		MetricName:     "mem_used_percent",
		Namespace:      namespaceCWAgent,
		DefaultOptions: "90/95/300/2/Maximum",
	},
	{
		TagKey:         "status-check",
		MetricName:     "StatusCheckFailed",
		Namespace:      namespaceEC2,
		DefaultCreate:  true,
		DefaultOptions: "-/0/60/2/Maximum",
		PromQL:         `max_over_time(aws_ec2_status_check_failed_maximum{dimension_InstanceId="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "network-in",
		MetricName:     "NetworkIn",
		Namespace:      namespaceEC2,
		DefaultOptions: "-/-/300/2/Average",
		PromQL:         `avg_over_time(aws_ec2_network_in_average{dimension_InstanceId="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "network-out",
		MetricName:     "NetworkOut",
		Namespace:      namespaceEC2,
		DefaultOptions: "-/-/300/2/Average",
		PromQL:         `avg_over_time(aws_ec2_network_out_average{dimension_InstanceId="{{resource}}"}[{{window}}])`,
	},
}

var targetGroupConfigs = []alarm.MetricAlarmConfig{
	{
		TagKey:         "unhealthy-host-count",
		MetricName:     "UnHealthyHostCount",
		Namespace:      namespaceALB,
		DefaultCreate:  true,
		DefaultOptions: "-/0/60/2/Maximum",
		PromQL:         `max_over_time(aws_applicationelb_un_healthy_host_count_maximum{dimension_TargetGroup="targetgroup/{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "healthy-host-count",
		MetricName:     "HealthyHostCount",
		Namespace:      namespaceALB,
		DefaultOptions: "-/1/60/2/Minimum/<",
		PromQL:         `min_over_time(aws_applicationelb_healthy_host_count_minimum{dimension_TargetGroup="targetgroup/{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "response-time",
		MetricName:     "TargetResponseTime",
		Namespace:      namespaceALB,
		DefaultOptions: "-/-/60/2/p90",
	},
	{
		TagKey:         "5xx",
		MetricName:     "HTTPCode_Target_5XX_Count",
		Namespace:      namespaceALB,
		DefaultOptions: "-/-/60/2/Sum",
		PromQL:         `sum_over_time(aws_applicationelb_httpcode_target_5_xx_count_sum{dimension_TargetGroup="targetgroup/{{resource}}"}[{{window}}])`,
	},
}

var albConfigs = []alarm.MetricAlarmConfig{
	{
		TagKey:         "4xx",
		MetricName:     "HTTPCode_ELB_4XX_Count",
		Namespace:      namespaceALB,
		DefaultOptions: "-/-/60/2/Sum",
		PromQL:         `sum_over_time(aws_applicationelb_httpcode_elb_4_xx_count_sum{dimension_LoadBalancer="app/{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "5xx",
		MetricName:     "HTTPCode_ELB_5XX_Count",
		Namespace:      namespaceALB,
		DefaultCreate:  true,
		DefaultOptions: "10/50/60/2/Sum",
		PromQL:         `sum_over_time(aws_applicationelb_httpcode_elb_5_xx_count_sum{dimension_LoadBalancer="app/{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "request-count-anomaly",
		MetricName:     "RequestCount",
		Namespace:      namespaceALB,
		IsAnomaly:      true,
		DefaultOptions: "Sum/300/2/<>",
	},
	{
		TagKey:         "response-time",
		MetricName:     "TargetResponseTime",
		Namespace:      namespaceALB,
		DefaultOptions: "3/5/60/2/p90",
	},
}

var nlbConfigs = []alarm.MetricAlarmConfig{
	{
		TagKey:         "tcp-reset-count",
		MetricName:     "TCP_ELB_Reset_Count",
		Namespace:      namespaceNLB,
		DefaultOptions: "-/-/60/2/Sum",
		PromQL:         `sum_over_time(aws_networkelb_tcp_elb_reset_count_sum{dimension_LoadBalancer="net/{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "unhealthy-host-count",
		MetricName:     "UnHealthyHostCount",
		Namespace:      namespaceNLB,
		DefaultOptions: "-/0/60/2/Maximum",
		PromQL:         `max_over_time(aws_networkelb_un_healthy_host_count_maximum{dimension_LoadBalancer="net/{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "active-flow-count-anomaly",
		MetricName:     "ActiveFlowCount",
		Namespace:      namespaceNLB,
		IsAnomaly:      true,
		DefaultOptions: "Average/300/2/<>",
	},
}

var sqsConfigs = []alarm.MetricAlarmConfig{
	{
		TagKey:         "messages-visible",
		MetricName:     "ApproximateNumberOfMessagesVisible",
		Namespace:      namespaceSQS,
		DefaultOptions: "-/-/300/1/Maximum",
		PromQL:         `max_over_time(aws_sqs_approximate_number_of_messages_visible_maximum{dimension_QueueName="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "age-of-oldest-message",
		MetricName:     "ApproximateAgeOfOldestMessage",
		Namespace:      namespaceSQS,
		DefaultCreate:  true,
		DefaultOptions: "-/-/300/1/Maximum",
		PromQL:         `max_over_time(aws_sqs_approximate_age_of_oldest_message_maximum{dimension_QueueName="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "messages-visible-anomaly",
		MetricName:     "ApproximateNumberOfMessagesVisible",
		Namespace:      namespaceSQS,
		IsAnomaly:      true,
		DefaultOptions: "Maximum/300/2",
	},
}

var snsConfigs = []alarm.MetricAlarmConfig{
	{
		TagKey:         "deliveries-failed",
		MetricName:     "NumberOfNotificationsFailed",
		Namespace:      namespaceSNS,
		DefaultCreate:  true,
		DefaultOptions: "-/1/300/1/Sum/>=",
		PromQL:         `sum_over_time(aws_sns_number_of_notifications_failed_sum{dimension_TopicName="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "messages-published-anomaly",
		MetricName:     "NumberOfMessagesPublished",
		Namespace:      namespaceSNS,
		IsAnomaly:      true,
		DefaultOptions: "Sum/300/2/<>",
	},
}

var lambdaConfigs = []alarm.MetricAlarmConfig{
	{
		TagKey:         "errors",
		MetricName:     "Errors",
		Namespace:      namespaceLambda,
		DefaultCreate:  true,
		DefaultOptions: "-/1/60/2/Sum/>=",
		PromQL:         `sum_over_time(aws_lambda_errors_sum{dimension_FunctionName="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "throttles",
		MetricName:     "Throttles",
		Namespace:      namespaceLambda,
		DefaultOptions: "1/5/60/2/Sum/>=",
		PromQL:         `sum_over_time(aws_lambda_throttles_sum{dimension_FunctionName="{{resource}}"}[{{window}}])`,
	},
	{
		TagKey:         "duration",
		MetricName:     "Duration",
		Namespace:      namespaceLambda,
		DefaultOptions: "-/-/60/2/p90",
	},
	{
		TagKey:         "duration-anomaly",
		MetricName:     "Duration",
		Namespace:      namespaceLambda,
		IsAnomaly:      true,
		DefaultOptions: "p90/300/2",
	},
}
